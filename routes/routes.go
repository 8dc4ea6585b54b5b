package routes

import (
	"github.com/gofiber/fiber/v2"
	"tour-booking-api/dto/res"
	"tour-booking-api/handler"
	"tour-booking-api/middleware"
)

type ConfigRoute struct {
	*fiber.App
	*middleware.Middleware
	*handler.UserHandler
	*handler.ChatHandler
	*handler.ReviewHandler
	*handler.PopularHandler
	*handler.AvailableHandler
	*handler.CategoryHandler
	*handler.FavoriteHandler
	*handler.NotificationHandler
}

func (rc *ConfigRoute) GetRoute() {
	rc.App.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(res.Info("Hello World!"))
	})

	rc.GetPublicRoute()
	rc.GetProtectedRoute()
}

func (rc *ConfigRoute) GetPublicRoute() {
	app := rc.App.Group("/api/v1")

	user := app.Group("/user")
	user.Post("/sign-up", rc.UserHandler.SignUp)
	user.Post("/sign-in", rc.UserHandler.SignIn)
	user.Post("/refresh-token", rc.UserHandler.RefreshToken)

	review := app.Group("/review")
	review.Get("/get", rc.ReviewHandler.GetReviews)
	review.Post("/post", rc.ReviewHandler.CreateReview)
	review.Put("/put/:id", rc.ReviewHandler.UpdateReview)
	review.Delete("/delete/:id", rc.ReviewHandler.DeleteReview)

	popular := app.Group("/popular")
	popular.Get("/get", rc.PopularHandler.GetPopulars)
	popular.Get("/get/:id", rc.PopularHandler.GetPopularByID)
	popular.Post("/post", rc.PopularHandler.CreatePopular)
	popular.Put("/update/:id", rc.PopularHandler.UpdatePopular)
	popular.Delete("/delete/:id", rc.PopularHandler.DeletePopular)

	available := app.Group("/available")
	available.Get("/get", rc.AvailableHandler.GetAvailables)
	available.Post("/post", rc.AvailableHandler.CreateAvailable)
	available.Put("/put", rc.AvailableHandler.UpdateAvailable)
	available.Put("/put/:id", rc.AvailableHandler.UpdateAvailable)
	available.Delete("/delete/:id", rc.AvailableHandler.DeleteAvailable)
	available.Get("/:id", rc.AvailableHandler.GetAvailableByID)

	category := app.Group("/category")
	category.Get("/get", rc.CategoryHandler.GetCategories)
	category.Post("/post", rc.CategoryHandler.CreateCategory)
	category.Put("/put/:id", rc.CategoryHandler.UpdateCategory)
	category.Delete("/delete/:id", rc.CategoryHandler.DeleteCategory)
}

func (rc *ConfigRoute) GetProtectedRoute() {
	app := rc.App.Group("/api/v1")
	protected := []fiber.Handler{rc.Middleware.JWTProtected, rc.Middleware.ExtractUserID}
	with := func(h fiber.Handler) []fiber.Handler {
		return append(append([]fiber.Handler{}, protected...), h)
	}

	user := app.Group("/user")
	user.Get("/me", with(rc.UserHandler.Me)...)
	user.Get("/get/:id", with(rc.UserHandler.GetUserByID)...)
	user.Post("/sign-out", with(rc.UserHandler.SignOut)...)
	user.Patch("/update/:id", with(rc.UserHandler.UpdateUser)...)

	chat := app.Group("/chat", protected...)
	chat.Get("/get-all", rc.ChatHandler.GetMessages)
	chat.Post("/send", rc.ChatHandler.SendMessage)
	chat.Get("/users", rc.ChatHandler.GetUsers)
	chat.Get("/private/:receiverId", rc.ChatHandler.GetPrivateMessages)
	chat.Post("/private/send", rc.ChatHandler.SendPrivateMessage)
	chat.Get("/last-messages", rc.ChatHandler.GetLastMessages)

	favorite := app.Group("/favorite", protected...)
	favorite.Get("/get", rc.FavoriteHandler.GetFavorites)
	favorite.Post("/add", rc.FavoriteHandler.AddFavorite)
	favorite.Delete("/remove/:popularId", rc.FavoriteHandler.RemoveFavorite)

	notification := app.Group("/notification", protected...)
	notification.Get("/", rc.NotificationHandler.GetNotifications)
	notification.Patch("/read", rc.NotificationHandler.MarkAllRead)
}
