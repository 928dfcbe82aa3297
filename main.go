package main

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"

	"github.com/HazemSoftPro/HotelTransylvania-sub001/routes"
	"github.com/HazemSoftPro/HotelTransylvania-sub001/storage"
	"github.com/HazemSoftPro/HotelTransylvania-sub001/utils"
)

func main() {
	godotenv.Load()
	storage.InitializeDB()
	storage.InitializeRedis()

	app := iris.New()
	app.Validator = validator.New()

	// CORS for the staff dashboard
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifier.WithDefaultBlocklist()
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	refreshTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("REFRESH_TOKEN_SECRET")))
	refreshTokenVerifier.WithDefaultBlocklist()
	refreshTokenVerifierMiddleware := refreshTokenVerifier.Verify(func() interface{} {
		return new(jwt.Claims)
	})

	refreshTokenVerifier.Extractors = append(refreshTokenVerifier.Extractors, func(ctx iris.Context) string {
		var tokenInput utils.RefreshTokenInput
		err := ctx.ReadJSON(&tokenInput)
		if err != nil {
			return ""
		}
		return tokenInput.RefreshToken
	})

	user := app.Party("/api/user")
	{
		user.Post("/register", routes.Register)
		user.Post("/login", routes.Login)
		user.Post("/google", routes.GoogleLoginOrSignUp)
		user.Post("/refresh", refreshTokenVerifierMiddleware, utils.RefreshToken)
		user.Patch("/pushtoken", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.AlterPushToken)
		user.Patch("/settings/notifications", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.AllowsNotifications)
	}

	guests := app.Party("/api/guests", accessTokenVerifierMiddleware, utils.StaffOnlyMiddleware)
	{
		guests.Post("/", routes.CreateGuest)
		guests.Get("/", routes.ListGuests)
		guests.Get("/{id:uint}", routes.GetGuest)
		guests.Put("/{id:uint}", routes.UpdateGuest)
		guests.Delete("/{id:uint}", utils.ManagerOnlyMiddleware, routes.DeleteGuest)
	}

	rooms := app.Party("/api/rooms", accessTokenVerifierMiddleware)
	{
		rooms.Get("/", utils.StaffOnlyMiddleware, routes.ListRooms)
		rooms.Get("/{id:uint}", utils.StaffOnlyMiddleware, routes.GetRoom)
		rooms.Get("/{id:uint}/availability", routes.GetRoomAvailability)
		rooms.Post("/", utils.ManagerOnlyMiddleware, routes.CreateRoom)
		rooms.Put("/{id:uint}", utils.ManagerOnlyMiddleware, routes.UpdateRoom)
		rooms.Patch("/{id:uint}/maintenance", utils.ManagerOnlyMiddleware, routes.SetRoomMaintenance)
	}

	reservations := app.Party("/api/reservations", accessTokenVerifierMiddleware)
	{
		reservations.Post("/", routes.CreateReservation)
		reservations.Get("/", utils.StaffOnlyMiddleware, routes.ListReservations)
		reservations.Get("/{id:uint}", routes.GetReservation)
		reservations.Patch("/{id:uint}/status", utils.StaffOnlyMiddleware, routes.ChangeReservationStatus)
		reservations.Post("/{id:uint}/services", utils.StaffOnlyMiddleware, routes.AddReservationService)
	}

	services := app.Party("/api/services", accessTokenVerifierMiddleware)
	{
		services.Get("/", routes.ListServices)
		services.Post("/", utils.ManagerOnlyMiddleware, routes.CreateService)
		services.Put("/{id:uint}", utils.ManagerOnlyMiddleware, routes.UpdateService)
		services.Delete("/{id:uint}", utils.ManagerOnlyMiddleware, routes.DeleteService)
	}

	payments := app.Party("/api/payments", accessTokenVerifierMiddleware, utils.StaffOnlyMiddleware)
	{
		payments.Post("/", routes.RecordPayment)
		payments.Get("/", routes.ListPayments)
		payments.Post("/{id:uint}/refund", utils.ManagerOnlyMiddleware, routes.RefundPayment)
	}

	employees := app.Party("/api/employees", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware)
	{
		employees.Post("/", routes.CreateEmployee)
		employees.Get("/", routes.ListEmployees)
		employees.Get("/{id:uint}", routes.GetEmployee)
		employees.Put("/{id:uint}", routes.UpdateEmployee)
		employees.Delete("/{id:uint}", routes.DeleteEmployee)
	}

	branches := app.Party("/api/branches", accessTokenVerifierMiddleware, utils.StaffOnlyMiddleware)
	{
		branches.Get("/", routes.ListBranches)
		branches.Get("/{id:uint}", routes.GetBranch)
		branches.Post("/", utils.AdminOnlyMiddleware, routes.CreateBranch)
		branches.Put("/{id:uint}", utils.AdminOnlyMiddleware, routes.UpdateBranch)
	}

	admin := app.Party("/api/admin", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware)
	{
		admin.Get("/stats", routes.AdminStats)
		admin.Get("/activity", routes.AdminActivity)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	app.Listen(":" + port)
}
