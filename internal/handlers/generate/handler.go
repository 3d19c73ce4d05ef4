package generate

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
	service service.Generator
	otel    otel.Otel
}

func New(service service.Generator, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Run expands the slots table and prints the run summary to out.
func (handler *Handler) Run(ctx context.Context, out io.Writer) (err error) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Generate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err := handler.service.Generate(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate room slots")

		return err
	}

	if err = res.Render(out); err != nil {
		return fmt.Errorf("failed to print summary: %w", err)
	}

	return nil
}
