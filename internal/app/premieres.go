package app

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/filmtix/ticketing/api"
	"github.com/filmtix/ticketing/internal/domain"
	"github.com/go-chi/chi/v5"
)

func (app *Application) GetPremiereOverviewHandler(w http.ResponseWriter, r *http.Request) {
	premiereId, err := strconv.ParseInt(chi.URLParam(r, "premiereId"), 10, 64)
	if err != nil || premiereId < 1 {
		app.notFoundResponse(w, r)
		return
	}

	overview, err := app.catalogRepo.GetPremiereOverview(r.Context(), premiereId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	resp := api.PremiereOverview{
		Id:         overview.PremiereID,
		StartsAt:   overview.StartsAt,
		FilmTitle:  overview.FilmTitle,
		CinemaName: overview.CinemaName,
		RoomName:   overview.RoomName,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
