package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/filmtix/ticketing/api"
	"github.com/filmtix/ticketing/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

const ErrSeatTaken = "The seat has already been sold for this premiere"

func (app *Application) CreateTicketHandler(w http.ResponseWriter, r *http.Request) {
	var input api.CreateTicketRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	accountId := app.contextGetAccountId(r)
	order := toTicketOrder(input, accountId)

	ticket, err := app.ticketRepo.Create(r.Context(), order)
	if err != nil {
		var outOfStock domain.ConcessionOutOfStockError

		switch {
		case errors.Is(err, domain.ErrSeatUnavailable):
			app.conflictResponse(w, r, ErrSeatTaken)
		case errors.As(err, &outOfStock):
			app.conflictResponse(w, r, outOfStock.Error())
		case errors.Is(err, domain.ErrSeatPricingMissing):
			app.unprocessableEntityResponse(w, r, domain.ErrSeatPricingMissing.Error())
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, err)
		case errors.Is(err, domain.ErrPurchaseContention):
			app.serviceUnavailableResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.sendPurchaseConfirmation(r, ticket)

	err = app.writeJSON(w, http.StatusCreated, toTicketResponse(ticket), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CancelTicketHandler(w http.ResponseWriter, r *http.Request) {
	ticketId, err := strconv.ParseInt(chi.URLParam(r, "ticketId"), 10, 64)
	if err != nil || ticketId < 1 {
		app.notFoundResponse(w, r)
		return
	}

	accountId := app.contextGetAccountId(r)

	ticket, err := app.ticketRepo.Cancel(r.Context(), ticketId, accountId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, err)
		case errors.Is(err, domain.ErrForbidden):
			app.forbiddenResponse(w, r)
		case errors.Is(err, domain.ErrEditConflict):
			app.editConflictResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, toTicketResponse(ticket), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetTicketsOfUserHandler(w http.ResponseWriter, r *http.Request) {
	params, err := parseTicketListParams(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	accountId := app.contextGetAccountId(r)
	filters := toTicketFilters(params)

	summaries, metadata, err := app.ticketRepo.GetSummariesByAccountId(r.Context(), accountId, filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.UserTicketsResponse{
		Tickets:  toTicketSummaries(summaries),
		Metadata: *toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetUserTicketByIdHandler(w http.ResponseWriter, r *http.Request) {
	ticketId, err := strconv.ParseInt(chi.URLParam(r, "ticketId"), 10, 64)
	if err != nil || ticketId < 1 {
		app.notFoundResponse(w, r)
		return
	}

	accountId := app.contextGetAccountId(r)

	ticket, err := app.ticketRepo.GetByIdAndAccountId(r.Context(), ticketId, accountId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, toTicketResponse(ticket), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// sendPurchaseConfirmation emails the buyer in the background. The purchase is
// already committed, so a delivery failure is only logged.
func (app *Application) sendPurchaseConfirmation(r *http.Request, ticket *domain.TicketDetail) {
	logger := app.contextGetLogger(r)

	app.background(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		account, err := app.accountRepo.GetById(ctx, ticket.AccountID)
		if err != nil {
			logger.Error("failed to load account for confirmation email", "error", err, "ticket_id", ticket.ID)
			return
		}

		type concessionLine struct {
			Name     string
			Quantity int32
		}

		concessions := make([]concessionLine, len(ticket.Lines))
		for i, line := range ticket.Lines {
			concessions[i] = concessionLine{Name: line.ItemName, Quantity: line.Quantity}
		}

		data := map[string]any{
			"firstName":    account.FirstName,
			"filmTitle":    ticket.FilmTitle,
			"cinemaName":   ticket.CinemaName,
			"roomName":     ticket.RoomName,
			"seatName":     ticket.SeatName,
			"premiereDate": ticket.PremiereStartsAt.Format("Monday, 2 January 2006 at 15:04"),
			"concessions":  concessions,
			"totalPrice":   decimal.New(ticket.TotalPrice, -2).StringFixed(2),
			"reference":    ticket.Reference.String(),
		}

		err = app.mailer.Send(account.Email, "ticket_purchased.tmpl", data)
		if err != nil {
			logger.Error("failed to send confirmation email", "error", err, "ticket_id", ticket.ID)
		}
	})
}

func parseTicketListParams(r *http.Request) (api.GetTicketsOfUserParams, error) {
	var params api.GetTicketsOfUserParams

	query := r.URL.Query()

	if page := query.Get("page"); page != "" {
		pageNum, err := strconv.Atoi(page)
		if err != nil {
			return params, fmt.Errorf("invalid page parameter: %s", page)
		}
		params.Page = &pageNum
	}

	if pageSize := query.Get("pageSize"); pageSize != "" {
		pageSizeNum, err := strconv.Atoi(pageSize)
		if err != nil {
			return params, fmt.Errorf("invalid pageSize parameter: %s", pageSize)
		}
		params.PageSize = &pageSizeNum
	}

	if term := query.Get("term"); term != "" {
		params.Term = &term
	}

	if from := query.Get("from"); from != "" {
		fromTime, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return params, fmt.Errorf("invalid from parameter: %s", from)
		}
		params.From = &fromTime
	}

	if to := query.Get("to"); to != "" {
		toTime, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return params, fmt.Errorf("invalid to parameter: %s", to)
		}
		params.To = &toTime
	}

	return params, nil
}

func toTicketOrder(input api.CreateTicketRequest, accountId int64) domain.TicketOrder {
	concessions := make([]domain.ConcessionOrder, len(input.Concessions))

	for i, v := range input.Concessions {
		concessions[i] = domain.ConcessionOrder{
			ItemID:   v.ItemID,
			Quantity: v.Quantity,
		}
	}

	return domain.TicketOrder{
		PremiereID:  input.PremiereID,
		SeatID:      input.SeatID,
		AccountID:   accountId,
		Concessions: concessions,
	}
}

func toTicketFilters(params api.GetTicketsOfUserParams) domain.TicketFilters {
	filters := domain.TicketFilters{
		Pagination: domain.Pagination{
			Page:     DefaultPage,
			PageSize: DefaultPageSize,
		},
		From: params.From,
		To:   params.To,
	}

	if params.Page != nil {
		filters.Page = *params.Page
	}
	if params.PageSize != nil {
		filters.PageSize = *params.PageSize
	}
	if params.Term != nil {
		filters.Term = *params.Term
	}

	return filters
}

func toTicketResponse(ticket *domain.TicketDetail) api.TicketResponse {
	concessions := make([]api.TicketConcessionLine, len(ticket.Lines))

	for i, v := range ticket.Lines {
		concessions[i] = api.TicketConcessionLine{
			ItemId:    v.ItemID,
			Name:      v.ItemName,
			Quantity:  v.Quantity,
			UnitPrice: decimal.New(v.UnitPrice, -2),
		}
	}

	return api.TicketResponse{
		Id:           ticket.ID,
		Reference:    ticket.Reference,
		PremiereId:   ticket.PremiereID,
		PremiereDate: ticket.PremiereStartsAt,
		FilmTitle:    ticket.FilmTitle,
		CinemaName:   ticket.CinemaName,
		RoomName:     ticket.RoomName,
		SeatId:       ticket.SeatID,
		SeatName:     ticket.SeatName,
		Status:       string(ticket.Status),
		TotalPrice:   decimal.New(ticket.TotalPrice, -2),
		Concessions:  concessions,
		CreatedAt:    ticket.CreatedAt,
		CancelledAt:  ticket.CancelledAt,
	}
}

func toTicketSummaries(summaries []domain.TicketSummary) []api.TicketSummary {
	ticketSummaries := make([]api.TicketSummary, len(summaries))

	for i, v := range summaries {
		ticketSummaries[i] = api.TicketSummary{
			Id:           v.TicketID,
			Reference:    v.Reference,
			FilmTitle:    v.FilmTitle,
			CinemaName:   v.CinemaName,
			RoomName:     v.RoomName,
			SeatName:     v.SeatName,
			PremiereDate: v.PremiereStartsAt,
			Status:       string(v.Status),
			TotalPrice:   decimal.New(v.TotalPrice, -2),
			CreatedAt:    v.CreatedAt,
		}
	}

	return ticketSummaries
}

func toApiMetadata(metadata *domain.Metadata) *api.Metadata {
	return &api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
