// Package server contains the HTTP handlers and route wiring for the API.
package server

import (
	"github.com/gofiber/fiber/v2"
)

// SendFriendRequest handles POST /api/users/friend-request/:id
func (s *Server) SendFriendRequest(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	recipientID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	request, err := s.friendService.SendRequest(c.UserContext(), userID, recipientID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(request)
}

// AcceptFriendRequest handles PUT /api/users/friend-request/:id/accept
func (s *Server) AcceptFriendRequest(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	requestID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	request, err := s.friendService.AcceptRequest(c.UserContext(), userID, requestID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(request)
}

// GetFriendRequests handles GET /api/users/friend-requests
func (s *Server) GetFriendRequests(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	overview, err := s.friendService.ListAll(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(overview)
}

// GetOutgoingFriendRequests handles GET /api/users/outgoing-friend-requests
func (s *Server) GetOutgoingFriendRequests(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	requests, err := s.friendService.ListOutgoing(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(requests)
}

// GetIncomingFriendRequests handles GET /api/users/incoming-friend-requests
func (s *Server) GetIncomingFriendRequests(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	requests, err := s.friendService.ListIncoming(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(requests)
}
