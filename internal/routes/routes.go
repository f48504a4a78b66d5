package routes

import (
	"github.com/gofiber/fiber/v2"

	"yaopets-backend/internal/handlers"
	"yaopets-backend/internal/middleware"
)

type Deps struct {
	Auth          *handlers.AuthHandler
	Users         *handlers.UserHandler
	Follows       *handlers.FollowHandler
	Posts         *handlers.PostHandler
	Likes         *handlers.LikeHandler
	Saves         *handlers.SaveHandler
	Comments      *handlers.CommentHandler
	Pets          *handlers.PetHandler
	Donations     *handlers.DonationHandler
	Notifications *handlers.NotificationHandler
}

// Register wires every route. Reads are public (the viewer, when present,
// only enriches the response); every state change sits behind RequireAuth.
func Register(app *fiber.App, d Deps) {
	auth := middleware.RequireAuth()

	app.Post("/auth/register", d.Auth.Register)
	app.Post("/auth/login", d.Auth.Login)
	app.Get("/auth/google/callback", d.Auth.GoogleCallback)
	app.Get("/me", auth, d.Auth.Me)

	users := app.Group("/users")
	users.Patch("/me", auth, d.Users.UpdateMe)
	users.Post("/me/photo", auth, d.Users.ProfileImage)
	users.Get("/me/saved", auth, d.Posts.ListSaved)
	users.Get("/:id", d.Users.GetProfile)
	users.Get("/:id/posts", d.Posts.ListByUser)
	users.Get("/:id/followers", d.Users.ListFollowers)
	users.Get("/:id/following", d.Users.ListFollowing)
	users.Post("/:id/follow", auth, d.Follows.Follow)
	users.Delete("/:id/follow", auth, d.Follows.Unfollow)

	posts := app.Group("/posts")
	posts.Get("/", d.Posts.ListFeed)
	posts.Post("/", auth, d.Posts.Create)
	posts.Delete("/:id", auth, d.Posts.Delete)
	posts.Post("/:id/like", auth, d.Likes.LikePost)
	posts.Delete("/:id/like", auth, d.Likes.UnlikePost)
	posts.Post("/:id/save", auth, d.Saves.Save)
	posts.Delete("/:id/save", auth, d.Saves.Unsave)
	posts.Get("/:id/comments", d.Comments.List)
	posts.Post("/:id/comments", auth, d.Comments.Create)

	comments := app.Group("/comments")
	comments.Post("/:id/like", auth, d.Likes.LikeComment)
	comments.Delete("/:id/like", auth, d.Likes.UnlikeComment)

	pets := app.Group("/pets")
	pets.Get("/", d.Pets.List)
	pets.Post("/", auth, d.Pets.Create)
	pets.Get("/:id", d.Pets.Get)
	pets.Patch("/:id/status", auth, d.Pets.UpdateStatus)

	donations := app.Group("/donations")
	donations.Get("/", d.Donations.List)
	donations.Post("/", auth, d.Donations.Create)

	app.Post("/payments/intent", auth, d.Donations.CreatePaymentIntent)

	notifs := app.Group("/notifications", auth)
	notifs.Get("/", d.Notifications.List)
	notifs.Post("/read", d.Notifications.MarkAllRead)
}
