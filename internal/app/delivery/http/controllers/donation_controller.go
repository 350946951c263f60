package controllers

import (
	"donaciones-service/internal/app/contracts"
	"donaciones-service/internal/pkg/constvars"
	"donaciones-service/internal/pkg/dto/requests"
	"donaciones-service/internal/pkg/exceptions"
	"donaciones-service/internal/pkg/utils"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type DonationController struct {
	Log     *zap.Logger
	Usecase contracts.DonationUsecase
}

func NewDonationController(logger *zap.Logger, usecase contracts.DonationUsecase) *DonationController {
	return &DonationController{Log: logger, Usecase: usecase}
}

// CreateCheckout processes POST /api/v1/donations/checkout.
func (ctrl *DonationController) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	if !strings.HasPrefix(r.Header.Get(constvars.HeaderContentType), constvars.MIMEApplicationJSON) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.BuildNewCustomError(nil, constvars.StatusUnsupportedMediaType, "Content-Type must be application/json", "checkout content type rejected"))
		return
	}

	request := new(requests.CheckoutRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	defer r.Body.Close()

	response, err := ctrl.Usecase.CreateCheckout(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CheckoutCreatedSuccessMessage, response)
}

// CreateSubscription processes POST /api/v1/donations/subscribe.
func (ctrl *DonationController) CreateSubscription(w http.ResponseWriter, r *http.Request) {
	if !strings.HasPrefix(r.Header.Get(constvars.HeaderContentType), constvars.MIMEApplicationJSON) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.BuildNewCustomError(nil, constvars.StatusUnsupportedMediaType, "Content-Type must be application/json", "subscribe content type rejected"))
		return
	}

	request := new(requests.SubscribeRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	defer r.Body.Close()

	response, err := ctrl.Usecase.CreateSubscription(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SubscriptionCreatedSuccessMessage, response)
}
