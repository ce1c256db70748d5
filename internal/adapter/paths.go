package adapter

// Auth endpoints.
const (
	pathLogin          = "/api/auth/login"
	pathAdminLogin     = "/api/auth/admin/login"
	pathRegister       = "/api/auth/register"
	pathLogout         = "/api/auth/logout"
	pathLogoutAll      = "/api/auth/logout-all"
	pathForgotPassword = "/api/auth/forgot-password"
	pathResetPassword  = "/api/auth/reset-password"
	pathVerifyEmail    = "/api/auth/verify-email"
	pathProfile        = "/api/auth/profile"
	pathChangePassword = "/api/auth/change-password"
	pathSetup2FA       = "/api/auth/setup-2fa"
	pathVerify2FA      = "/api/auth/verify-2fa"
	pathDisable2FA     = "/api/auth/disable-2fa"
	pathSessions       = "/api/auth/sessions"
	pathSession        = "/api/auth/sessions/{id}"
)

// Feature endpoints.
const (
	pathStories       = "/api/stories"
	pathStory         = "/api/stories/{id}"
	pathStoryLike     = "/api/stories/{id}/like"
	pathStoryBookmark = "/api/stories/{id}/bookmark"
	pathGallery       = "/api/gallery"
	pathTours         = "/api/tours"
	pathTour          = "/api/tours/{id}"
	pathBookings      = "/api/bookings"
	pathContact       = "/api/contact"
	pathAdminMessages = "/api/admin/messages"
	pathAdminMessage  = "/api/admin/messages/{id}/read"
	pathAdminStats    = "/api/admin/stats"
	pathPageView      = "/api/analytics/page-view"
)
