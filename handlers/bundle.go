// File: cardoctor/handlers/bundle.go
package handlers

import (
	"cardoctor/services/session"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Sessions session.SessionService

	// Session endpoints
	IssueTokenHandler gin.HandlerFunc
	LogoutHandler     gin.HandlerFunc

	// Service catalog endpoints
	ListServicesHandler gin.HandlerFunc
	GetServiceHandler   gin.HandlerFunc

	// Booking endpoints
	ListBookingsHandler        gin.HandlerFunc
	CreateBookingHandler       gin.HandlerFunc
	UpdateBookingStatusHandler gin.HandlerFunc
	DeleteBookingHandler       gin.HandlerFunc
}
