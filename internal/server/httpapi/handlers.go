package httpapi

import (
	"errors"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"

	"github.com/dmitrijs2005/webmanager/internal/common"
	"github.com/dmitrijs2005/webmanager/internal/server/models"
	"github.com/dmitrijs2005/webmanager/internal/server/services"
)

type registerRequest struct {
	EmployeeName string `json:"employee_name"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	Position     string `json:"position"`
}

func (r registerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.EmployeeName, validation.Required),
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r loginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

type loginResponse struct {
	Message string           `json:"message"`
	Token   string           `json:"token"`
	User    *models.Employee `json:"user"`
}

func (s *Server) handleRegister(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctx := c.UserContext()

	_, err := s.employees.Register(ctx, services.RegisterInput{
		EmployeeName: req.EmployeeName,
		Username:     req.Username,
		Password:     req.Password,
		Position:     req.Position,
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Username already exists"})
		}
		s.logger.Error(ctx, "registration failed", "username", req.Username, "error", err)
		return s.internalError(c)
	}

	s.logger.Info(ctx, "registered", "username", req.Username)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "User registered successfully"})
}

func (s *Server) handleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctx := c.UserContext()

	token, employee, err := s.employees.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid username or password"})
		}
		s.logger.Error(ctx, "login failed", "username", req.Username, "error", err)
		return s.internalError(c)
	}

	return c.JSON(loginResponse{
		Message: "Login successful",
		Token:   token,
		User:    employee,
	})
}

func (s *Server) handleListUsers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	ctx := c.UserContext()

	users, err := s.hosting.ListUsers(ctx, page, limit)
	if err != nil {
		s.logger.Error(ctx, "listing users failed", "error", err)
		return s.internalError(c)
	}

	return c.JSON(users)
}

func (s *Server) handleUserDetail(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Params("userId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	ctx := c.UserContext()

	detail, err := s.hosting.GetUserDetail(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		s.logger.Error(ctx, "user detail lookup failed", "user_id", userID, "error", err)
		return s.internalError(c)
	}

	return c.JSON(detail)
}

func (s *Server) internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
}
