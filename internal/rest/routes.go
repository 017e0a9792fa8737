package rest

import "github.com/gin-gonic/gin"

// Handlers groups every http handler of the platform.
type Handlers struct {
	Blog     *BlogHandler
	Post     *PostHandler
	Comment  *CommentHandler
	Reaction *ReactionHandler
	User     *UserHandler
	Ban      *BanHandler
	Auth     *AuthHandler
	Device   *DeviceHandler
}

// Guards are the middlewares gating the route groups.
type Guards struct {
	Auth         gin.HandlerFunc // bearer token required
	OptionalAuth gin.HandlerFunc // identifies the viewer when possible
	Session      gin.HandlerFunc // refresh token cookie required
	SuperAdmin   gin.HandlerFunc // basic auth
	RateLimit    gin.HandlerFunc
}

// RegisterRoutes mounts the public, blogger, super-admin and auth routes.
func RegisterRoutes(route gin.IRouter, h Handlers, g Guards) {
	public := route.Group("/", g.OptionalAuth)
	{
		public.GET("/blogs", h.Blog.Fetch)
		public.GET("/blogs/:id", h.Blog.GetByID)
		public.GET("/blogs/:id/posts", h.Post.FetchByBlog)
		public.GET("/posts", h.Post.Fetch)
		public.GET("/posts/:id", h.Post.GetByID)
		public.GET("/posts/:id/comments", h.Comment.FetchByPost)
		public.GET("/comments/:id", h.Comment.GetByID)
	}

	authorized := route.Group("/", g.Auth)
	{
		authorized.POST("/posts/:id/comments", h.Comment.Create)
		authorized.PUT("/posts/:id/like-status", h.Reaction.LikePost)
		authorized.PUT("/comments/:id", h.Comment.Update)
		authorized.DELETE("/comments/:id", h.Comment.Delete)
		authorized.PUT("/comments/:id/like-status", h.Reaction.LikeComment)
	}

	blogger := route.Group("/blogger", g.Auth)
	{
		blogger.GET("/blogs", h.Blog.FetchOwned)
		blogger.POST("/blogs", h.Blog.Store)
		blogger.GET("/blogs/comments", h.Comment.FetchForBlogger)
		blogger.PUT("/blogs/:blogId", h.Blog.Update)
		blogger.DELETE("/blogs/:blogId", h.Blog.Delete)
		blogger.POST("/blogs/:blogId/posts", h.Post.Store)
		blogger.PUT("/blogs/:blogId/posts/:postId", h.Post.Update)
		blogger.DELETE("/blogs/:blogId/posts/:postId", h.Post.Delete)
		blogger.PUT("/users/:userId/ban", h.Ban.BanUserForBlog)
		blogger.GET("/users/blog/:blogId", h.Ban.FetchBlogBans)
	}

	sa := route.Group("/sa", g.SuperAdmin)
	{
		sa.GET("/blogs", h.Blog.FetchForAdmin)
		sa.GET("/users", h.User.Fetch)
		sa.POST("/users", h.User.Create)
		sa.DELETE("/users/:id", h.User.Delete)
		sa.PUT("/users/:id/ban", h.Ban.BanUser)
	}

	auth := route.Group("/auth")
	{
		auth.POST("/registration", g.RateLimit, h.Auth.Register)
		auth.POST("/login", g.RateLimit, h.Auth.Login)
		auth.POST("/refresh-token", h.Auth.Refresh)
		auth.POST("/logout", h.Auth.Logout)
		auth.GET("/me", g.Auth, h.Auth.Me)
	}

	devices := route.Group("/security/devices", g.Session)
	{
		devices.GET("", h.Device.Fetch)
		devices.DELETE("", h.Device.TerminateOthers)
		devices.DELETE("/:deviceId", h.Device.Terminate)
	}
}
