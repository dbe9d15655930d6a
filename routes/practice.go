package routes

import (
	"fluentwork/controllers"

	"github.com/gin-gonic/gin"
)

// SetupSessionRoutes wires the session lifecycle endpoints
func SetupSessionRoutes(router *gin.Engine, sc *controllers.SessionController) {
	router.POST("/start-session", sc.StartSession)
	router.POST("/get-manager-response", sc.GetManagerResponse)
	router.POST("/get-feedback", sc.GetFeedback)
	router.DELETE("/session/:id", sc.DeleteSession)
	router.GET("/debug/sessions", sc.DebugSessions)
}

// SetupProgressRoutes wires the progress endpoints
func SetupProgressRoutes(router *gin.Engine, pc *controllers.ProgressController) {
	router.GET("/user-progress", pc.GetProgress)
	router.POST("/reset-progress", pc.ResetProgress)
}

// SetupSpeechRoutes wires the transcription endpoint
func SetupSpeechRoutes(router *gin.Engine, sp *controllers.SpeechController) {
	router.POST("/speech-to-text", sp.SpeechToText)
}
