package verify

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
	service service.Verifier
	otel    otel.Otel
}

func New(service service.Verifier, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Run prints the verification report of the combined slots file to out.
func (handler *Handler) Run(ctx context.Context, out io.Writer) (err error) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Verify")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	report, err := handler.service.Verify(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to verify room slots")

		return err
	}

	if err = report.Render(out); err != nil {
		return fmt.Errorf("failed to print report: %w", err)
	}

	return nil
}
