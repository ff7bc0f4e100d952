package app

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/filmtix/ticketing/api"
	"github.com/filmtix/ticketing/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

func (app *Application) GetConcessionsByCinemaHandler(w http.ResponseWriter, r *http.Request) {
	cinemaId, err := strconv.ParseInt(chi.URLParam(r, "cinemaId"), 10, 64)
	if err != nil || cinemaId < 1 {
		app.notFoundResponse(w, r)
		return
	}

	items, err := app.catalogRepo.GetConcessionItemsByCinema(r.Context(), cinemaId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	resp := api.ConcessionListResponse{
		CinemaId:    cinemaId,
		Concessions: toConcessionItems(items),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toConcessionItems(items []domain.ConcessionItem) []api.ConcessionItem {
	concessions := make([]api.ConcessionItem, len(items))

	for i, v := range items {
		concessions[i] = api.ConcessionItem{
			Id:                v.ID,
			Name:              v.Name,
			UnitPrice:         decimal.New(v.UnitPrice, -2),
			RemainingQuantity: v.RemainingQuantity,
		}
	}

	return concessions
}
