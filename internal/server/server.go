package server

import (
	"net/http"
	"time"

	"github.com/danmuck/chrolisctl/internal/config"
	"github.com/danmuck/chrolisctl/internal/observability"
	"github.com/danmuck/chrolisctl/internal/step"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const version = "0.1.0"

// Planner is a stateless HTTP surface over the step codec. Accumulating
// lines is left to the client.
type Planner struct {
	Name     string
	Addr     string
	Appeared time.Time

	units  step.FieldUnits
	router *gin.Engine
	logger zerolog.Logger
}

func New(cfg config.PlannerConfig, logger zerolog.Logger) (*Planner, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	fu, err := cfg.Units.FieldUnits()
	if err != nil {
		return nil, err
	}

	observability.RegisterMetrics()
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(logger))
	r.Use(observability.RequestMetrics(cfg.Name))
	if len(cfg.CorsOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: cfg.CorsOrigins,
			AllowMethods: []string{"GET", "POST"},
			AllowHeaders: []string{"Origin", "Content-Type"},
			MaxAge:       12 * time.Hour,
		}))
	}
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	p := &Planner{
		Name:     cfg.Name,
		Addr:     cfg.Addr,
		Appeared: time.Now(),
		units:    fu,
		router:   r,
		logger:   logger,
	}
	p.registerRoutes()
	return p, nil
}

func (p *Planner) Handler() http.Handler {
	return p.router
}

func (p *Planner) Serve() error {
	p.logger.Info().Str("addr", p.Addr).Msg("planner listening")
	return p.router.Run(p.Addr)
}
