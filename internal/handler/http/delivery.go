package http

import (
	"log/slog"
	"net/http"

	"github.com/gastrodesk/backoffice-api/internal/domain/delivery"
	"github.com/gastrodesk/backoffice-api/internal/handler/http/response"
)

type DeliveryHandler interface {
	Stats(w http.ResponseWriter, r *http.Request)
}

type deliveryHandlerImpl struct {
	deliveryService delivery.DeliveryService
}

func NewDeliveryHandler(deliveryService delivery.DeliveryService) DeliveryHandler {
	return &deliveryHandlerImpl{
		deliveryService: deliveryService,
	}
}

// Stats implements DeliveryHandler.
func (h *deliveryHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	filter := delivery.StatsFilter{
		From:     optionalQueryParam(r, "from"),
		To:       optionalQueryParam(r, "to"),
		Platform: optionalQueryParam(r, "platform"),
		Local:    optionalQueryParam(r, "local"),
	}

	result, err := h.deliveryService.GetPlatformStats(r.Context(), filter)
	if err != nil {
		slog.Error("GetPlatformStats service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
