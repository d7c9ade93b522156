package routes

import (
	"github.com/gin-gonic/gin"

	"doctorkays/internal/handlers"
	"doctorkays/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	authHandler *handlers.AuthHandler,
	adminHandler *handlers.AdminHandler,
	patientHandler *handlers.PatientHandler,
	intakeHandler *handlers.IntakeHandler,
	questionHandler *handlers.QuestionHandler,
	consultationHandler *handlers.ConsultationHandler,
	roomHandler *handlers.RoomHandler,
	doctorHandler *handlers.DoctorHandler,
	recordHandler *handlers.RecordHandler,
	analysisHandler *handlers.AnalysisHandler,
) *gin.Engine {
	api := r.Group("/api")

	// ---- public
	api.POST("/admin/login", authHandler.Login)
	api.POST("/admin/verify-login", authHandler.VerifyLogin)

	api.POST("/auth/signup", patientHandler.Signup)
	api.POST("/auth/signin", patientHandler.Signin)

	api.POST("/contact", intakeHandler.AddContact)
	api.POST("/volunteer", intakeHandler.AddVolunteer)
	api.POST("/sponsorship", intakeHandler.AddSponsor)
	api.POST("/enquiry", intakeHandler.AddEnquiry)
	api.POST("/feedback", intakeHandler.AddFeedback)

	questions := api.Group("/questions")
	{
		questions.POST("/", questionHandler.Create)
		questions.GET("/", questionHandler.List)
		questions.GET("/:id", questionHandler.GetByID)
		questions.POST("/:id/comments", questionHandler.AddComment)
		questions.POST("/:id/react", questionHandler.React)
	}

	api.POST("/consultation", consultationHandler.Add)
	api.POST("/consultation/free", consultationHandler.AddFree)
	api.GET("/consultation/:id", consultationHandler.GetByID)
	api.POST("/booking-confirmation", consultationHandler.SendBookingConfirmation)

	rooms := api.Group("/rooms")
	{
		rooms.POST("/", roomHandler.Create)
		rooms.GET("/:roomName", roomHandler.GetByRoomName)
		rooms.GET("/:roomName/validate", roomHandler.Validate)
	}

	doctors := api.Group("/doctors")
	{
		doctors.GET("/", doctorHandler.List)
		doctors.GET("/:id", doctorHandler.GetByID)
		doctors.POST("/:id/reviews", doctorHandler.AddReview)
	}

	api.POST("/ai-analysis", analysisHandler.Analyze)

	// ---- patient portal (JWT)
	api.GET("/records/me", middleware.PatientAuth(), recordHandler.GetOwn)

	// ---- admin (JWT)
	admin := api.Group("/admin", middleware.AdminAuth())
	{
		admin.POST("/register", adminHandler.Register)
		admin.GET("/me", adminHandler.Me)
		admin.PUT("/me", adminHandler.UpdateMe)
		admin.GET("/stats", adminHandler.Stats)

		admin.GET("/contacts", intakeHandler.ListContacts)
		admin.GET("/volunteers", intakeHandler.ListVolunteers)
		admin.GET("/sponsors", intakeHandler.ListSponsors)
		admin.GET("/enquiries", intakeHandler.ListEnquiries)
		admin.GET("/feedback", intakeHandler.ListFeedback)

		admin.GET("/consultations", consultationHandler.List)
		admin.DELETE("/consultations/:id", consultationHandler.Delete)

		admin.PUT("/questions/:id/answer", questionHandler.Answer)

		admin.POST("/doctors", doctorHandler.Create)

		records := admin.Group("/records")
		{
			records.GET("/", recordHandler.List)
			records.GET("/:patientId", recordHandler.GetByPatient)
			records.PATCH("/:patientId", recordHandler.Update)
			records.DELETE("/:patientId", recordHandler.Delete)
		}
	}

	return r
}
