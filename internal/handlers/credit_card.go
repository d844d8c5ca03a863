package handlers

import (
	"errors"

	"cardcheck/internal/creditcard"
	apperrors "cardcheck/internal/errors"
	"cardcheck/internal/services/cards"
	"cardcheck/internal/utils"
	"cardcheck/internal/utils/pagination"
	"cardcheck/internal/utils/response"
	"cardcheck/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CreditCardHandler struct {
	cardService cards.Service
	log         *zap.Logger
}

func NewCreditCardHandler(cardService cards.Service, log *zap.Logger) *CreditCardHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &CreditCardHandler{
		cardService: cardService,
		log:         log,
	}
}

type checkRequest struct {
	CardNumber string `json:"card_number"`
}

type batchCheckRequest struct {
	CardNumbers []string `json:"card_numbers" validate:"required"`
}

type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

type cardTypeInfo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CardTypes lists the recognised card networks.
func (h *CreditCardHandler) CardTypes(c *fiber.Ctx) error {
	all := creditcard.AllCardTypes()
	types := make([]cardTypeInfo, 0, len(all))
	for _, ct := range all {
		types = append(types, cardTypeInfo{ID: int(ct), Name: ct.String()})
	}
	return response.Success(c, "Card types retrieved successfully", types)
}

func (h *CreditCardHandler) Check(c *fiber.Ctx) error {
	var input checkRequest
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	return response.Success(c, "Card checked", h.cardService.Check(input.CardNumber))
}

func (h *CreditCardHandler) CheckBatch(c *fiber.Ctx) error {
	var input batchCheckRequest
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if fields := validation.ValidateStruct(input); fields != nil {
		return response.ValidationError(c, fields)
	}

	results, err := h.cardService.CheckBatch(c.UserContext(), input.CardNumbers)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.Success(c, "Cards checked", results)
}

func (h *CreditCardHandler) LinkCard(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	var input cards.CreateCardInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	card, err := h.cardService.LinkCard(c.UserContext(), claims.UserID, input)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Created(c, "Credit card linked successfully", card)
}

func (h *CreditCardHandler) GetCards(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	all, err := h.cardService.GetUserCards(c.UserContext(), claims.UserID)
	if err != nil {
		return h.handleError(c, err)
	}

	p := pagination.ParseFromRequest(c)
	page := pagination.Slice(&p, all)
	return c.JSON(pagination.Response(p, page))
}

func (h *CreditCardHandler) GetCard(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	publicID, err := uuid.Parse(c.Params("public_id"))
	if err != nil {
		return response.BadRequest(c, "Invalid card ID")
	}

	card, err := h.cardService.GetCard(c.UserContext(), claims.UserID, publicID)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.Success(c, "Card retrieved successfully", card)
}

func (h *CreditCardHandler) SetDefault(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}
	cardID, err := c.ParamsInt("id")
	if err != nil || cardID < 1 {
		return response.BadRequest(c, "Invalid card ID")
	}

	if err := h.cardService.SetDefaultCard(c.UserContext(), claims.UserID, uint(cardID)); err != nil {
		return h.handleError(c, err)
	}
	return response.Success(c, "Default card updated", nil)
}

// SetStatus enables or disables one of the caller's cards.
func (h *CreditCardHandler) SetStatus(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}
	cardID, err := c.ParamsInt("id")
	if err != nil || cardID < 1 {
		return response.BadRequest(c, "Invalid card ID")
	}

	var input statusRequest
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if fields := validation.ValidateStruct(input); fields != nil {
		return response.ValidationError(c, fields)
	}

	if err := h.cardService.SetCardStatus(c.UserContext(), claims.UserID, uint(cardID), input.Status); err != nil {
		return h.handleError(c, err)
	}
	return response.Success(c, "Card status updated", fiber.Map{"status": input.Status})
}

func (h *CreditCardHandler) DeleteCard(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}
	cardID, err := c.ParamsInt("id")
	if err != nil || cardID < 1 {
		return response.BadRequest(c, "Invalid card ID")
	}

	if err := h.cardService.DeleteCard(c.UserContext(), claims.UserID, uint(cardID)); err != nil {
		return h.handleError(c, err)
	}

	return response.Success(c, "Card deleted successfully", nil)
}

// handleError maps service errors onto HTTP responses.
func (h *CreditCardHandler) handleError(c *fiber.Ctx, err error) error {
	var verr *cards.ValidationError
	if errors.As(err, &verr) {
		return response.ValidationError(c, verr.Fields)
	}

	if errors.Is(err, cards.ErrTokenizationFailed) {
		h.log.Warn("card processor error", zap.Error(err))
		return response.Error(c, fiber.StatusBadGateway, "Card could not be tokenized")
	}

	var derr *apperrors.DomainError
	if errors.As(err, &derr) {
		return response.CodedError(c, domainStatus(derr), derr.Code, derr.Message)
	}

	h.log.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
	return response.ServerError(c, "Internal server error")
}

func domainStatus(err *apperrors.DomainError) int {
	switch {
	case errors.Is(err, apperrors.ErrCardNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, apperrors.ErrCardNotOwned):
		return fiber.StatusForbidden
	case errors.Is(err, apperrors.ErrDuplicateCard):
		return fiber.StatusConflict
	case errors.Is(err, apperrors.ErrBatchTooLarge):
		return fiber.StatusRequestEntityTooLarge
	default:
		return fiber.StatusUnprocessableEntity
	}
}
