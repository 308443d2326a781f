package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/tazman887/rork-organizator-nunta/internal/domain"
	"github.com/tazman887/rork-organizator-nunta/internal/planner"
	"github.com/tazman887/rork-organizator-nunta/internal/state"
)

type Error struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type SyncResponse struct {
	Status state.Status `json:"status"`
}

// StatsResponse bundles the read-side aggregations for the statistics
// and budget screens.
type StatsResponse struct {
	Guests           domain.GuestStats       `json:"guests"`
	TotalBudget      float64                 `json:"totalBudget"`
	BudgetByCategory map[string]float64      `json:"budgetByCategory"`
	Tables           []domain.TableOccupancy `json:"tables"`
}

type syncState interface {
	Status() state.Status
}

type Handler struct {
	planner *planner.Planner
	sync    syncState
}

func NewHandler(p *planner.Planner, sync syncState) *Handler {
	return &Handler{planner: p, sync: sync}
}

func RegisterHandlers(r *gin.Engine, h *Handler) {
	r.GET("/health", h.GetHealth)
	r.GET("/plan", h.GetPlan)
	r.GET("/plan/stats", h.GetPlanStats)
	r.GET("/plan/sync", h.GetPlanSync)
	r.PUT("/plan/details", h.PutPlanDetails)

	r.POST("/tasks", h.PostTask)
	r.POST("/tasks/:id/toggle", h.PostTaskToggle)

	r.POST("/guests", h.PostGuest)
	r.PUT("/guests/:id", h.PutGuest)
	r.PUT("/guests/:id/status", h.PutGuestStatus)
	r.PUT("/guests/:id/table", h.PutGuestTable)
	r.POST("/guests/:id/invitation", h.PostGuestInvitation)
	r.DELETE("/guests/:id", h.DeleteGuest)

	r.POST("/expenses", h.PostExpense)

	r.POST("/tables", h.PostTable)
	r.DELETE("/tables/:id", h.DeleteTable)
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

func (h *Handler) GetPlan(c *gin.Context) {
	c.JSON(http.StatusOK, h.planner.Document())
}

func (h *Handler) GetPlanStats(c *gin.Context) {
	c.JSON(http.StatusOK, StatsResponse{
		Guests:           h.planner.GuestStats(),
		TotalBudget:      h.planner.TotalBudget(),
		BudgetByCategory: h.planner.BudgetByCategory(),
		Tables:           h.planner.TableOccupancy(),
	})
}

func (h *Handler) GetPlanSync(c *gin.Context) {
	c.JSON(http.StatusOK, SyncResponse{Status: h.sync.Status()})
}

type detailsUpdate struct {
	// Raw so an explicit null (clear the date) is distinguishable from an
	// absent key (leave it unchanged).
	WeddingDate  json.RawMessage `json:"weddingDate"`
	PartnerName1 *string         `json:"partnerName1"`
	PartnerName2 *string         `json:"partnerName2"`
}

func (h *Handler) PutPlanDetails(c *gin.Context) {
	var body detailsUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, Error{Message: "invalid request body"})
		return
	}

	patch := domain.DetailsPatch{
		PartnerName1: body.PartnerName1,
		PartnerName2: body.PartnerName2,
	}
	if len(body.WeddingDate) > 0 {
		if string(body.WeddingDate) == "null" {
			patch.ClearWeddingDate = true
		} else {
			var date time.Time
			if err := json.Unmarshal(body.WeddingDate, &date); err != nil {
				c.JSON(http.StatusBadRequest, Error{Message: "invalid request body"})
				return
			}
			patch.WeddingDate = &date
		}
	}

	details := h.planner.UpdateWeddingDetails(patch)

	log.Info("wedding details updated")
	c.JSON(http.StatusOK, details)
}

type taskCreate struct {
	Title    string `json:"title" binding:"required"`
	Category string `json:"category" binding:"required"`
}

func (h *Handler) PostTask(c *gin.Context) {
	var body taskCreate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, Error{Message: "invalid request body"})
		return
	}

	task := h.planner.AddTask(body.Title, body.Category)
	c.JSON(http.StatusCreated, task)
}

func (h *Handler) PostTaskToggle(c *gin.Context) {
	h.planner.ToggleTask(c.Param("id"))
	c.Status(http.StatusNoContent)
}

type guestCreate struct {
	Name             string           `json:"name" binding:"required"`
	Side             domain.GuestSide `json:"side" binding:"required,oneof=groom bride"`
	NumberOfPeople   *int             `json:"numberOfPeople" binding:"omitempty,min=1"`
	NumberOfChildren *int             `json:"numberOfChildren" binding:"omitempty,min=0"`
	SpecialMenuNotes string           `json:"specialMenuNotes"`
}

func (h *Handler) PostGuest(c *gin.Context) {
	var body guestCreate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, Error{Message: "invalid request body"})
		return
	}

	numPeople := 1
	if body.NumberOfPeople != nil {
		numPeople = *body.NumberOfPeople
	}
	numChildren := 0
	if body.NumberOfChildren != nil {
		numChildren = *body.NumberOfChildren
	}

	guest := h.planner.AddGuest(body.Name, body.Side, numPeople, numChildren, body.SpecialMenuNotes)

	log.WithField("guest_id", guest.ID).Info("guest added")
	c.JSON(http.StatusCreated, guest)
}

type guestUpdate struct {
	Name             string           `json:"name" binding:"required"`
	Side             domain.GuestSide `json:"side" binding:"required,oneof=groom bride"`
	NumberOfPeople   int              `json:"numberOfPeople" binding:"required,min=1"`
	NumberOfChildren *int             `json:"numberOfChildren" binding:"omitempty,min=0"`
	SpecialMenuNotes string           `json:"specialMenuNotes"`
}

func (h *Handler) PutGuest(c *gin.Context) {
	var body guestUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, Error{Message: "invalid request body"})
		return
	}

	numChildren := 0
	if body.NumberOfChildren != nil {
		numChildren = *body.NumberOfChildren
	}

	h.planner.UpdateGuest(c.Param("id"), body.Name, body.Side, body.NumberOfPeople, numChildren, body.SpecialMenuNotes)
	c.Status(http.StatusNoContent)
}

type guestStatusUpdate struct {
	Status            domain.GuestStatus `json:"status" binding:"required,oneof=confirmed pending declined"`
	ConfirmedPeople   *int               `json:"confirmedPeople" binding:"omitempty,min=0"`
	ConfirmedChildren *int               `json:"confirmedChildren" binding:"omitempty,min=0"`
}

func (h *Handler) PutGuestStatus(c *gin.Context) {
	var body guestStatusUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, Error{Message: "invalid request body"})
		return
	}

	id := c.Param("id")
	h.planner.UpdateGuestStatus(id, body.Status, body.ConfirmedPeople, body.ConfirmedChildren)

	log.WithField("guest_id", id).WithField("status", string(body.Status)).Info("guest status updated")
	c.Status(http.StatusNoContent)
}

type guestTableAssign struct {
	TableID string `json:"tableId"`
}

func (h *Handler) PutGuestTable(c *gin.Context) {
	var body guestTableAssign
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, Error{Message: "invalid request body"})
		return
	}

	h.planner.AssignGuestToTable(c.Param("id"), body.TableID)
	c.Status(http.StatusNoContent)
}

func (h *Handler) PostGuestInvitation(c *gin.Context) {
	h.planner.ToggleInvitationSent(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h *Handler) DeleteGuest(c *gin.Context) {
	h.planner.DeleteGuest(c.Param("id"))
	c.Status(http.StatusNoContent)
}

type expenseCreate struct {
	Title    string   `json:"title" binding:"required"`
	Amount   *float64 `json:"amount" binding:"required,min=0"`
	Category string   `json:"category" binding:"required"`
}

func (h *Handler) PostExpense(c *gin.Context) {
	var body expenseCreate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, Error{Message: "invalid request body"})
		return
	}

	expense := h.planner.AddExpense(body.Title, *body.Amount, body.Category)
	c.JSON(http.StatusCreated, expense)
}

type tableCreate struct {
	Number *int `json:"number" binding:"required,min=0"`
	Seats  *int `json:"seats" binding:"required,min=1"`
}

func (h *Handler) PostTable(c *gin.Context) {
	var body tableCreate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, Error{Message: "invalid request body"})
		return
	}

	table := h.planner.AddTable(*body.Number, *body.Seats)
	c.JSON(http.StatusCreated, table)
}

func (h *Handler) DeleteTable(c *gin.Context) {
	id := c.Param("id")
	h.planner.DeleteTable(id)

	log.WithField("table_id", id).Info("table deleted")
	c.Status(http.StatusNoContent)
}
