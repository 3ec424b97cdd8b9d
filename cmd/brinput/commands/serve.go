package commands

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/vortex-fintech/brinput/address"
	apperrors "github.com/vortex-fintech/brinput/errors"
	"github.com/vortex-fintech/brinput/form"
	"github.com/vortex-fintech/brinput/logger"
	"github.com/vortex-fintech/brinput/logutil"
	"github.com/vortex-fintech/brinput/postalcode"
	"github.com/vortex-fintech/brinput/taxid"
)

const shutdownTimeout = 5 * time.Second

func serveCmd(a *app) *cobra.Command {
	var (
		o      lookupOptions
		listen string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve validation and address lookup over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			log := a.logOrNop()
			af, done := o.autofiller(ctx, log)
			defer done()

			srv := &http.Server{
				Addr:              listen,
				Handler:           newHandler(af, log, a.env),
				ReadHeaderTimeout: 5 * time.Second,
			}
			errc := make(chan error, 1)
			go func() { errc <- srv.ListenAndServe() }()
			log.Infow("http listening", "addr", listen)

			select {
			case err := <-errc:
				return err
			case <-ctx.Done():
			}
			sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(sctx); err != nil {
				return err
			}
			if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&listen, "listen", ":8080", "HTTP listen address")
	o.bind(cmd)
	return cmd
}

type handler struct {
	af  *address.Autofiller
	log *logger.Logger
	env string
}

func newHandler(af *address.Autofiller, log *logger.Logger, env string) http.Handler {
	r := chi.NewRouter()
	(&handler{af: af, log: log, env: env}).Register(r)
	return r
}

// Register mounts:
//
//	GET  /v1/tax-ids/{id}
//	GET  /v1/postal-codes/{code}
//	POST /v1/registrations[?autofill=true]
func (h *handler) Register(r chi.Router) {
	r.Get("/v1/tax-ids/{id}", h.taxID)
	r.Get("/v1/postal-codes/{code}", h.postalCode)
	r.Post("/v1/registrations", h.registration)
}

func (h *handler) taxID(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	if err := taxIDRules.Run(raw).Err(); err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, map[string]string{"tax_id": taxid.Mask(raw)})
}

func (h *handler) postalCode(w http.ResponseWriter, r *http.Request) {
	addr, err := h.af.Lookup(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		address.ToErrorResponse(err).ToHTTP(w)
		return
	}
	writeOK(w, addr)
}

func (h *handler) registration(w http.ResponseWriter, r *http.Request) {
	reg, err := decodeRegistration(http.MaxBytesReader(w, r.Body, maxRegistrationBody))
	if err != nil {
		writeError(w, err)
		return
	}
	var af *address.Autofiller
	if r.URL.Query().Get("autofill") == "true" {
		af = h.af
	}
	reg, err = checkRegistration(r.Context(), reg, af, h.log, h.env)
	if err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, reg)
}

func writeError(w http.ResponseWriter, err error) {
	var resp apperrors.ErrorResponse
	if !errors.As(err, &resp) {
		resp = apperrors.ToErrorResponse(err, nil)
	}
	resp.ToHTTP(w)
}

func writeOK(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(v)
}

// checkRegistration normalizes reg, fills the address when af is set and the
// postal code is complete, then runs the registration pipeline. Over-long
// postal codes skip the lookup and are rejected by the pipeline.
func checkRegistration(ctx context.Context, reg form.Registration, af *address.Autofiller, log *logger.Logger, env string) (form.Registration, error) {
	reg = reg.Normalize()
	if af != nil && postalcode.IsValid(reg.PostalCode) {
		af.Fill(ctx, &reg)
	}
	res := form.RegistrationPipeline().Run(reg)
	if err := res.Err(); err != nil {
		log.Infow("registration rejected",
			"input", logutil.SanitizeInput(reg.Values(), env),
			"violations", res.Fields())
		return reg, err
	}
	return reg, nil
}
