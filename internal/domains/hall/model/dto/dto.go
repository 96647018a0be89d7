package dto

import (
	"hallbook/internal/domains/hall/model"
	gModel "hallbook/shared/model"
	"hallbook/shared/timezone"
)

type CreateHallRequest struct {
	Name       string `json:"name"       validate:"required"`
	Capacity   int    `json:"capacity"   validate:"gt=0,lte=2147483647"`
	Facilities string `json:"facilities" validate:"omitempty"`
	Location   string `json:"location"   validate:"omitempty"`
}

func (c *CreateHallRequest) ToModel() model.Hall {
	return model.Hall{
		Name:       c.Name,
		Capacity:   c.Capacity,
		Facilities: c.Facilities,
		Location:   c.Location,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
		},
	}
}

type CreateHallResponse struct {
	Message string `json:"message" example:"Hall created"`
	HallID  int64  `json:"hall_id" example:"1"`
}

type HallResponse struct {
	ID         int64  `json:"hall_id"`
	Name       string `json:"name"`
	Capacity   int    `json:"capacity"`
	Facilities string `json:"facilities"`
	Location   string `json:"location"`
}

func (h *HallResponse) FromModel(model model.Hall) {
	h.ID = model.ID
	h.Name = model.Name
	h.Capacity = model.Capacity
	h.Facilities = model.Facilities
	h.Location = model.Location
}

// NewHallsResponse never returns nil so an empty catalog encodes as [].
func NewHallsResponse(models []model.Hall) []HallResponse {
	res := make([]HallResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
