package controllers

import (
	"net/http"

	"fluentwork/models"
	"fluentwork/services"

	"github.com/gin-gonic/gin"
)

// SpeechController exposes audio transcription
type SpeechController struct {
	transcriber services.Transcriber
}

func NewSpeechController(transcriber services.Transcriber) *SpeechController {
	return &SpeechController{transcriber: transcriber}
}

// SpeechToText transcribes base64-encoded audio to text
func (sp *SpeechController) SpeechToText(c *gin.Context) {
	var req models.SpeechToTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	text, confidence, err := sp.transcriber.Transcribe(c.Request.Context(), req.AudioBase64)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transcription failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.SpeechToTextResponse{
		TranscribedText: text,
		ConfidenceScore: confidence,
	})
}
