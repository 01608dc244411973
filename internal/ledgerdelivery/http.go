// Package ledgerdelivery manages delivery layer of the ledger.
package ledgerdelivery

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/engine"
	"github.com/go-petr/pet-ledger/internal/eventcsv"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
	"github.com/go-petr/pet-ledger/pkg/web"
)

// Service provides service layer interface needed by ledger delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package ledgerdelivery
type Service interface {
	Apply(ctx context.Context, ev domain.Event) (domain.AccountState, error)
	Replay(ctx context.Context, r io.Reader) (engine.Stats, error)
	Get(ctx context.Context, client domain.ClientID) (domain.AccountState, error)
	List(ctx context.Context) []domain.AccountState
}

// Handler facilitates ledger delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns ledger handler.
func NewHandler(s Service) Handler {
	return Handler{service: s}
}

type accountData struct {
	Account domain.AccountState `json:"account"`
}

type accountsData struct {
	Accounts []domain.AccountState `json:"accounts"`
}

type statsData struct {
	Stats engine.Stats `json:"stats"`
}

type eventRequest struct {
	Type   string  `json:"type" binding:"required,eventtype"`
	Client *uint16 `json:"client" binding:"required"`
	Tx     *uint32 `json:"tx" binding:"required"`
	Amount string  `json:"amount"`
}

func (r eventRequest) event() (domain.Event, error) {
	return eventcsv.ParseRecord([]string{
		r.Type,
		strconv.FormatUint(uint64(*r.Client), 10),
		strconv.FormatUint(uint64(*r.Tx), 10),
		r.Amount,
	})
}

// CreateEvent handles http request to apply one event.
func (h *Handler) CreateEvent(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req eventRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingErrorMsg(err)})

		return
	}

	ev, err := req.event()
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	state, err := h.service.Apply(ctx, ev)
	if err != nil {
		var opErr *domain.OpError
		if errors.As(err, &opErr) {
			gctx.JSON(http.StatusUnprocessableEntity, web.Error(opErr.Kind))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: accountData{state}})
}

// ReplayCSV handles http request to apply a whole CSV transaction log.
func (h *Handler) ReplayCSV(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	stats, err := h.service.Replay(ctx, gctx.Request.Body)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		l.Warn().Err(err).Interface("stats", stats).Send()
		gctx.JSON(http.StatusServiceUnavailable, web.Response{
			Data:  statsData{stats},
			Error: errorspkg.ErrCanceled.Error(),
		})

		return
	}

	if err != nil {
		l.Info().Err(err).Interface("stats", stats).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{
			Data:  statsData{stats},
			Error: err.Error(),
		})

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: statsData{stats}})
}

type getRequest struct {
	Client string `uri:"client" binding:"required,numeric"`
}

// Get handles http request to get one account.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingErrorMsg(err)})

		return
	}

	client, err := strconv.ParseUint(req.Client, 10, 16)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(eventcsv.ErrInvalidClientID))

		return
	}

	state, err := h.service.Get(ctx, domain.ClientID(client))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: accountData{state}})
}

// List handles http request to list all accounts.
func (h *Handler) List(gctx *gin.Context) {
	states := h.service.List(gctx.Request.Context())

	gctx.JSON(http.StatusOK, web.Response{Data: accountsData{states}})
}
