package publish

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"roomslots/infras/otel"
	"roomslots/internal/domains/slot/service"
	"roomslots/shared/constant"
)

type Handler struct {
	service service.Publisher
	otel    otel.Otel
}

func New(service service.Publisher, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Run(ctx context.Context, out io.Writer) (err error) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err := handler.service.Publish(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to publish room slots")

		return err
	}

	if err = res.Render(out); err != nil {
		return fmt.Errorf("failed to print publish result: %w", err)
	}

	return nil
}
