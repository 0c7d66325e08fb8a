package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"taskdeck/internal/common"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// taskRequest deliberately has no owner field: the owner always comes from
// the verified token, so a client-supplied value has nowhere to land.
type taskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

func (s *Server) register(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid JSON payload")
	}

	user, err := s.users.Register(c.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			return jsonError(c, fiber.StatusBadRequest, "email and password are required")
		case errors.Is(err, common.ErrorAlreadyExists):
			return jsonError(c, fiber.StatusConflict, "email already registered")
		default:
			s.logger.Error(c.Context(), "registration failed", "error", err.Error())
			return jsonError(c, fiber.StatusInternalServerError, "internal error")
		}
	}

	s.logger.Info(c.Context(), "user registered", "user_id", user.ID)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":    user.ID,
		"email": user.Email,
	})
}

func (s *Server) login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid JSON payload")
	}

	token, err := s.users.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			return jsonError(c, fiber.StatusBadRequest, "email and password are required")
		case errors.Is(err, common.ErrorUnauthorized):
			// same body for unknown email and wrong password
			return jsonError(c, fiber.StatusUnauthorized, "invalid credentials")
		default:
			s.logger.Error(c.Context(), "login failed", "error", err.Error())
			return jsonError(c, fiber.StatusInternalServerError, "internal error")
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"token": token})
}

func (s *Server) createTask(c *fiber.Ctx) error {
	var req taskRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid JSON payload")
	}

	task, err := s.tasks.Create(c.Context(), userIDFromCtx(c), req.Title, req.Description, req.Status)
	if err != nil {
		return s.taskError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(toTaskResponse(task))
}

func (s *Server) listTasks(c *fiber.Ctx) error {
	list, err := s.tasks.List(c.Context(), userIDFromCtx(c))
	if err != nil {
		return s.taskError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(toTaskResponses(list))
}

func (s *Server) getTask(c *fiber.Ctx) error {
	task, err := s.tasks.Get(c.Context(), userIDFromCtx(c), c.Params("id"))
	if err != nil {
		return s.taskError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(toTaskResponse(task))
}

func (s *Server) updateTask(c *fiber.Ctx) error {
	var req taskRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid JSON payload")
	}

	task, err := s.tasks.Update(c.Context(), userIDFromCtx(c), c.Params("id"), req.Title, req.Description, req.Status)
	if err != nil {
		return s.taskError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(toTaskResponse(task))
}

func (s *Server) deleteTask(c *fiber.Ctx) error {
	if err := s.tasks.Delete(c.Context(), userIDFromCtx(c), c.Params("id")); err != nil {
		return s.taskError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// taskError maps service errors to HTTP statuses. An ownership mismatch is a
// plain 404, indistinguishable from a missing id.
func (s *Server) taskError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return jsonError(c, fiber.StatusBadRequest, "invalid task fields")
	case errors.Is(err, common.ErrorNotFound):
		return jsonError(c, fiber.StatusNotFound, "task not found")
	default:
		s.logger.Error(c.Context(), "task operation failed", "error", err.Error())
		return jsonError(c, fiber.StatusInternalServerError, "internal error")
	}
}
