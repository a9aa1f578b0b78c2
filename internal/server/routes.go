package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/danmuck/chrolisctl/internal/observability"
	"github.com/danmuck/chrolisctl/internal/step"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type decodeRequest struct {
	Program string `json:"program"`
}

type decodedStep struct {
	Line         int    `json:"line"`
	CSV          string `json:"csv"`
	Description  string `json:"description"`
	PulsesForced bool   `json:"pulses_forced,omitempty"`
}

func (p *Planner) registerRoutes() {
	p.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(p.Appeared).String(),
			"service": p.Name,
			"version": version,
		})
	})

	p.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := p.router.Group("/v1/steps")
	v1.POST("/encode", p.handleEncode)
	v1.POST("/decode", p.handleDecode)
}

func (p *Planner) handleEncode(c *gin.Context) {
	var in step.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	line, err := step.EncodeInput(in, p.units)
	if err != nil {
		p.fail(c, "encode", err)
		return
	}
	observability.RecordCodec("encode", "ok")
	c.JSON(http.StatusOK, gin.H{"line": line})
}

func (p *Planner) handleDecode(c *gin.Context) {
	var req decodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	entries, err := step.ParseProgram(req.Program)
	if err != nil {
		p.fail(c, "decode", err)
		return
	}
	out := make([]decodedStep, 0, len(entries))
	for _, e := range entries {
		if e.Step.PulsesForced() {
			observability.RecordPulseCorrection()
		}
		out = append(out, decodedStep{
			Line:         e.Line,
			CSV:          e.Step.CSVLine(),
			Description:  e.Step.String(),
			PulsesForced: e.Step.PulsesForced(),
		})
	}
	observability.RecordCodec("decode", "ok")
	c.JSON(http.StatusOK, gin.H{"steps": out})
}

// fail maps codec errors to 422 with their kind and code; anything else is
// a server configuration fault.
func (p *Planner) fail(c *gin.Context, op string, err error) {
	var stepErr *step.Error
	if !errors.As(err, &stepErr) {
		observability.RecordCodec(op, "internal")
		p.logger.Error().Err(err).Str("op", op).Msg("codec failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	kind := stepErr.Kind.String()
	observability.RecordCodec(op, kind)
	c.Set(observability.ContextErrorKind, kind)
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"error": err.Error(),
		"kind":  kind,
		"code":  string(stepErr.Code),
	})
}
