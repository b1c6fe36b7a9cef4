// Package server contains the HTTP handlers and route wiring for the API.
package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetRecommendedUsers handles GET /api/users
func (s *Server) GetRecommendedUsers(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	users, err := s.friendService.ListRecommended(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(users)
}

// GetMyFriends handles GET /api/users/friends
func (s *Server) GetMyFriends(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	friends, err := s.friendService.ListFriends(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(friends)
}
