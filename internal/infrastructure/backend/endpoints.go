package backend

import (
	"context"
	"net/http"
	"net/url"

	"vitalsync/internal/domain/entity"
)

type locationList struct {
	Items []entity.UserLocation `json:"items" validate:"dive"`
}

type NewReview struct {
	AuthorName string `json:"authorName"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

type NewLocation struct {
	Label       string             `json:"label"`
	AddressLine string             `json:"addressLine"`
	Latitude    float64            `json:"latitude"`
	Longitude   float64            `json:"longitude"`
	Tag         entity.LocationTag `json:"tag"`
}

func (c *Client) ListDoctors(ctx context.Context, filter entity.DoctorFilter) (entity.ResultPage[entity.Doctor], error) {
	return getJSON[entity.ResultPage[entity.Doctor]](ctx, c, "/doctors", filter.QueryParams())
}

func (c *Client) GetDoctorDetail(ctx context.Context, id string) (entity.DoctorDetailView, error) {
	return getJSON[entity.DoctorDetailView](ctx, c, "/doctors/"+url.PathEscape(id), nil)
}

func (c *Client) CreateDoctorReview(ctx context.Context, doctorID string, review NewReview) (entity.DoctorReview, error) {
	return sendJSON[entity.DoctorReview](ctx, c, http.MethodPost, "/doctors/"+url.PathEscape(doctorID)+"/reviews", review)
}

func (c *Client) ListMedicines(ctx context.Context, filter entity.MedicineFilter) (entity.ResultPage[entity.Medicine], error) {
	return getJSON[entity.ResultPage[entity.Medicine]](ctx, c, "/medicines", filter.QueryParams())
}

// SearchMedicinesAdvanced looks up every medicine of a shopping list at once.
func (c *Client) SearchMedicinesAdvanced(ctx context.Context, list entity.ShoppingList) (entity.ResultPage[entity.Medicine], error) {
	return sendJSON[entity.ResultPage[entity.Medicine]](ctx, c, http.MethodPost, "/medicines/advanced", list)
}

func (c *Client) ListEmergencyCenters(ctx context.Context, filter entity.CenterFilter) (entity.ResultPage[entity.CenterMatch], error) {
	return getJSON[entity.ResultPage[entity.CenterMatch]](ctx, c, "/centers/search", filter.QueryParams())
}

func (c *Client) ListLocations(ctx context.Context) ([]entity.UserLocation, error) {
	list, err := getJSON[locationList](ctx, c, "/locations", nil)
	if err != nil {
		return nil, err
	}
	return list.Items, nil
}

func (c *Client) CreateLocation(ctx context.Context, location NewLocation) (entity.UserLocation, error) {
	return sendJSON[entity.UserLocation](ctx, c, http.MethodPost, "/locations", location)
}

func (c *Client) MarkPrimaryLocation(ctx context.Context, id string) (entity.UserLocation, error) {
	body := map[string]bool{"isPrimary": true}
	return sendJSON[entity.UserLocation](ctx, c, http.MethodPatch, "/locations/"+url.PathEscape(id), body)
}

func (c *Client) DeleteLocation(ctx context.Context, id string) error {
	_, err := c.call(ctx, http.MethodDelete, "/locations/"+url.PathEscape(id), nil, nil)
	return err
}

func (c *Client) GetSymptomGuide(ctx context.Context) (entity.SymptomGuide, error) {
	return getJSON[entity.SymptomGuide](ctx, c, "/symptoms", nil)
}

// SubmitSymptoms sends the wizard answers and returns the guide with a
// personalised result.
func (c *Client) SubmitSymptoms(ctx context.Context, submission entity.SymptomSubmission) (entity.SymptomGuide, error) {
	return sendJSON[entity.SymptomGuide](ctx, c, http.MethodPost, "/symptoms", submission)
}

func (c *Client) SendConversation(ctx context.Context, message entity.ConversationMessage) (entity.ConversationReply, error) {
	return sendJSON[entity.ConversationReply](ctx, c, http.MethodPost, "/symptoms/conversation", message)
}
