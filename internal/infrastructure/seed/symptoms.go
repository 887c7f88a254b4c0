package seed

import "vitalsync/internal/domain/entity"

func SymptomGuide() entity.SymptomGuide {
	return entity.SymptomGuide{
		Steps: []entity.SymptomGuideStep{
			{ID: entity.StepArea, Label: "Paso 1 de 4", Description: "Selecciona el área del cuerpo con malestar", Progress: 25},
			{ID: entity.StepSymptom, Label: "Paso 2 de 4", Description: "Elige los síntomas que presentas", Progress: 50},
			{ID: entity.StepConversation, Label: "Paso 3 de 4", Description: "Habla con nuestra IA para afinar los detalles", Progress: 75},
			{ID: entity.StepResults, Label: "Paso 4 de 4", Description: "Revisa el resultado preliminar y sugerencias", Progress: 100},
		},
		Areas: []entity.BodyArea{
			{ID: "head", Label: "Cabeza", Description: "Dolor, migraña, mareos"},
			{ID: "chest", Label: "Pecho", Description: "Dificultad para respirar, presión"},
			{ID: "abdomen", Label: "Abdomen", Description: "Retortijones, náuseas"},
			{ID: "limbs", Label: "Extremidades", Description: "Dolor muscular, articulaciones"},
		},
		Symptoms: []entity.CommonSymptom{
			{ID: "fever", Label: "Fiebre", Icon: "local_fire_department"},
			{ID: "headache", Label: "Dolor de cabeza", Icon: "sentiment_dissatisfied"},
			{ID: "nausea", Label: "Náuseas", Icon: "sick"},
			{ID: "cough", Label: "Tos", Icon: "air"},
			{ID: "fatigue", Label: "Fatiga", Icon: "sentiment_very_dissatisfied"},
			{ID: "chills", Label: "Escalofríos", Icon: "ac_unit"},
			{ID: "sore-throat", Label: "Dolor de garganta", Icon: "thermostat"},
			{ID: "dizziness", Label: "Mareo", Icon: "mood_bad"},
			{ID: "other", Label: "Otro", Icon: "more_horiz"},
		},
		Conversation: entity.GuideConversation{
			Heading:    "Hablemos con la IA de Symptom Guide",
			Subheading: "Responde un par de preguntas rápidas para que podamos reducir las posibles causas y elegir la recomendación adecuada.",
			Blocks: []entity.ConversationBlock{
				{
					ID:      "intro-1",
					Content: "Entiendo que estás experimentando dolor de cabeza. Dame un poco más de contexto para ayudarte mejor.",
					Icon:    "health_and_safety",
				},
				{
					ID:      "pain-quality",
					Content: "¿El dolor es punzante o una presión constante?",
					Icon:    "health_and_safety",
					Options: []entity.ConversationOption{
						{ID: "sharp", Label: "Punzante"},
						{ID: "pressure", Label: "Presión constante"},
					},
				},
				{
					ID:      "other-symptoms",
					Content: "¿Tienes otros síntomas como náuseas o sensibilidad a la luz?",
					Icon:    "health_and_safety",
					Options: []entity.ConversationOption{
						{ID: "nausea", Label: "Náuseas"},
						{ID: "photophobia", Label: "Sensibilidad a la luz"},
						{ID: "none", Label: "Ninguno"},
					},
				},
			},
		},
		Result: entity.SymptomGuideResult{
			Title:          "Resultado preliminar",
			Subtitle:       "Resumen personalizado con posibles causas",
			Disclaimer:     "Esto no es un diagnóstico médico definitivo. Es una orientación inicial que debe ser evaluada por un profesional.",
			PossibleCauses: []string{"Resfriado común", "Gripe (Influenza)", "Faringitis estreptocócica"},
			Actions: []entity.SymptomResultAction{
				{
					ID:          "urgent-care",
					Level:       "Nivel 3: Atención urgente",
					Emphasis:    "high",
					Title:       "Considera buscar atención médica inmediata si los síntomas empeoran rápidamente.",
					Description: "Dolor intenso, fiebre alta persistente o dificultad para respirar ameritan acudir a un servicio de urgencias.",
					CTALabel:    "Hospital de emergencia más cercano",
					CTAHref:     "/centers",
				},
				{
					ID:          "consultation",
					Level:       "Nivel 2: Consulta médica",
					Emphasis:    "medium",
					Title:       "Agenda una consulta con un médico general para obtener un diagnóstico preciso.",
					Description: "Un especialista puede solicitar estudios adicionales y definir el tratamiento adecuado.",
					CTALabel:    "Buscar un médico general",
					CTAHref:     "/doctors",
				},
				{
					ID:          "self-care",
					Level:       "Nivel 1: Autocuidado",
					Emphasis:    "low",
					Title:       "Descansa, hidrátate y monitorea tus síntomas durante las próximas 24 horas.",
					Description: "Si notas nuevos síntomas o cambios repentinos, vuelve a contactarnos o consulta a un profesional.",
					CTALabel:    "Más información",
				},
			},
		},
	}
}
