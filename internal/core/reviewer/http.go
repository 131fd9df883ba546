package reviewer

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/pokereview/internal/core/review"
	"github.com/taibuivan/pokereview/internal/platform/constants"
	requestutil "github.com/taibuivan/pokereview/internal/platform/request"
	"github.com/taibuivan/pokereview/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] mounted at /api/reviewer.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listReviewers)
	router.Get("/{reviewerId}", handler.getReviewer)
	router.Get("/{reviewerId}/reviews", handler.listReviews)

	router.Post("/", handler.createReviewer)
	router.Put("/{reviewerId}", handler.updateReviewer)
	router.Delete("/{reviewerId}", handler.deleteReviewer)

	return router
}

func (handler *Handler) listReviewers(writer http.ResponseWriter, request *http.Request) {
	items, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ToDTOs(items))
}

func (handler *Handler) getReviewer(writer http.ResponseWriter, request *http.Request) {
	reviewerID, err := requestutil.IntID(request, "reviewerId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	reviewer, err := handler.service.Get(request.Context(), reviewerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ToDTO(reviewer))
}

func (handler *Handler) listReviews(writer http.ResponseWriter, request *http.Request) {
	reviewerID, err := requestutil.IntID(request, "reviewerId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	items, err := handler.service.ListReviews(request.Context(), reviewerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, review.ToDTOs(items))
}

func (handler *Handler) createReviewer(writer http.ResponseWriter, request *http.Request) {
	var body *DTO
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Create(request.Context(), body); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, constants.MessageCreated)
}

func (handler *Handler) updateReviewer(writer http.ResponseWriter, request *http.Request) {
	reviewerID, err := requestutil.IntID(request, "reviewerId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body *DTO
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Update(request.Context(), reviewerID, body); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, constants.MessageUpdated)
}

func (handler *Handler) deleteReviewer(writer http.ResponseWriter, request *http.Request) {
	reviewerID, err := requestutil.IntID(request, "reviewerId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), reviewerID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, constants.MessageDeleted)
}
