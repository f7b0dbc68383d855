package views

// Route is a client-side destination.
type Route string

const (
	RouteHome               Route = "/"
	RouteRegister           Route = "/register"
	RouteLogin              Route = "/login"
	RouteCreateOffer        Route = "/job-offers/create"
	RouteRecruiterDashboard Route = "/recruiter-dashboard"
	RouteAllJobOffers       Route = "/all-job-offers"
	RouteCandidateDashboard Route = "/candidate-dashboard"
)

// Navigator performs client-side navigation. View models call it; they never
// decide how a destination is presented.
type Navigator interface {
	To(route Route)
}
