// Package handlers is made to handle requests
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vigenere-translator/crypto"
	"vigenere-translator/models"
)

type TranslatorHandler struct {
	translator *crypto.Translator
	logger     *zap.Logger
}

func NewTranslatorHandler(translator *crypto.Translator, logger *zap.Logger) *TranslatorHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TranslatorHandler{
		translator: translator,
		logger:     logger,
	}
}

// Register mounts the translator routes on the given group.
func (h *TranslatorHandler) Register(api *gin.RouterGroup) {
	api.GET("/health", h.HealthCheck)
	api.POST("/translate", h.Translate)
	api.PUT("/key", h.SetKey)
	api.GET("/alphabet", h.GetAlphabet)
	api.PUT("/alphabet", h.SetAlphabet)
}

func (h *TranslatorHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Vigenère translator API is running",
		"version": "1.0.0",
	})
}

func (h *TranslatorHandler) Translate(c *gin.Context) {
	var req models.TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.TranslateResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid request: %v", err),
		})
		return
	}

	mode, err := crypto.ParseMode(req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.TranslateResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	translator := h.translator
	if req.Key != "" {
		// One-off translator, the shared key and alphabet stay as they are.
		alphabet := req.Alphabet
		if alphabet == "" {
			alphabet = h.translator.Alphabet()
		}
		translator, err = crypto.NewTranslatorWithAlphabet(req.Key, alphabet)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.TranslateResponse{
				Success: false,
				Message: fmt.Sprintf("Invalid configuration: %v", err),
			})
			return
		}
	} else if req.Alphabet != "" {
		c.JSON(http.StatusBadRequest, models.TranslateResponse{
			Success: false,
			Message: "Alphabet override requires a key",
		})
		return
	}

	result, err := translator.Translate(req.Message, mode)
	if err != nil {
		status := http.StatusInternalServerError
		if crypto.IsConfigError(err) || errors.Is(err, crypto.ErrInvalidMode) {
			status = http.StatusBadRequest
		}
		_ = c.Error(err)
		c.JSON(status, models.TranslateResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to %s message: %v", mode, err),
		})
		return
	}

	c.JSON(http.StatusOK, models.TranslateResponse{
		Success: true,
		Message: fmt.Sprintf("Message %sed", mode),
		Mode:    mode.String(),
		Result:  result,
	})
}

func (h *TranslatorHandler) SetKey(c *gin.Context) {
	var req models.KeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.KeyResponse{
			Success: false,
			Message: "Key is required",
		})
		return
	}

	shifts, err := h.translator.ApplyKey(req.Key)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.KeyResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid key: %v", err),
		})
		return
	}

	h.logger.Info("key changed", zap.Int("key_length", len(shifts)))

	c.JSON(http.StatusOK, models.KeyResponse{
		Success: true,
		Message: "Key updated",
		Shifts:  shifts,
	})
}

func (h *TranslatorHandler) GetAlphabet(c *gin.Context) {
	alphabet := h.translator.Alphabet()
	c.JSON(http.StatusOK, models.AlphabetResponse{
		Success:  true,
		Message:  "Current alphabet",
		Alphabet: alphabet,
		Length:   utf8.RuneCountInString(alphabet),
	})
}

// SetAlphabet replaces the shared alphabet without touching the key. Clients
// have to PUT the key again for the shifts to follow the new alphabet.
func (h *TranslatorHandler) SetAlphabet(c *gin.Context) {
	var req models.AlphabetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.AlphabetResponse{
			Success: false,
			Message: "Alphabet is required",
		})
		return
	}

	if err := h.translator.SetAlphabet(req.Alphabet); err != nil {
		c.JSON(http.StatusBadRequest, models.AlphabetResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid alphabet: %v", err),
		})
		return
	}

	alphabet := req.Alphabet
	h.logger.Info("alphabet changed", zap.Int("alphabet_length", utf8.RuneCountInString(alphabet)))

	c.JSON(http.StatusOK, models.AlphabetResponse{
		Success:  true,
		Message:  "Alphabet updated, set the key again to apply it to the shifts",
		Alphabet: alphabet,
		Length:   utf8.RuneCountInString(alphabet),
	})
}
