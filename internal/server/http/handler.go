package http

import (
	"net/http"
	"strings"

	"github.com/dmitrijs2005/gophtasks/internal/common"
	"github.com/dmitrijs2005/gophtasks/internal/server/models"
	"github.com/labstack/echo/v4"
)

type credentialsRequest struct {
	UserName string `json:"username"`
	Password string `json:"password"`
}

type taskRequest struct {
	Text string `json:"text"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type statusResponse struct {
	Message        string `json:"message"`
	DatabaseStatus string `json:"databaseStatus"`
}

type loginResponse struct {
	Token    string `json:"token"`
	UserName string `json:"username"`
}

type taskUpdatedResponse struct {
	Message string       `json:"message"`
	Task    *models.Task `json:"task"`
}

func bindJSON(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body").SetInternal(err)
	}
	return nil
}

func (s *HTTPServer) getStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, statusResponse{
		Message:        "Server is running",
		DatabaseStatus: s.status.DatabaseStatus(),
	})
}

func (s *HTTPServer) register(c echo.Context) error {
	var req credentialsRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if strings.TrimSpace(req.UserName) == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Username and password are required")
	}

	if _, err := s.users.Register(c.Request().Context(), req.UserName, req.Password); err != nil {
		return serviceError(err, map[error]string{
			common.ErrorAlreadyExists: "Username already exists",
			common.ErrorValidation:    "Invalid username or password",
		})
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: "User registered successfully"})
}

func (s *HTTPServer) login(c echo.Context) error {
	var req credentialsRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if req.UserName == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Username and password are required")
	}

	res, err := s.users.Login(c.Request().Context(), req.UserName, req.Password)
	if err != nil {
		return serviceError(err, map[error]string{
			common.ErrorUnauthorized: "Invalid credentials",
		})
	}

	return c.JSON(http.StatusOK, loginResponse{Token: res.Token, UserName: res.UserName})
}

func (s *HTTPServer) listTasks(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	items, err := s.tasks.List(c.Request().Context(), userID)
	if err != nil {
		return serviceError(err, nil)
	}
	if items == nil {
		items = []*models.Task{}
	}

	return c.JSON(http.StatusOK, items)
}

func (s *HTTPServer) createTask(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req taskRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if strings.TrimSpace(req.Text) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Task text is required")
	}

	task, err := s.tasks.Create(c.Request().Context(), userID, req.Text)
	if err != nil {
		return serviceError(err, map[error]string{
			common.ErrorValidation: "Task text is required",
		})
	}

	return c.JSON(http.StatusCreated, task)
}

func (s *HTTPServer) updateTask(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req taskRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if strings.TrimSpace(req.Text) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Task text cannot be empty")
	}

	task, err := s.tasks.Update(c.Request().Context(), userID, c.Param("id"), req.Text)
	if err != nil {
		return serviceError(err, map[error]string{
			common.ErrorValidation: "Task text cannot be empty",
			common.ErrorNotFound:   "Task not found",
			common.ErrorForbidden:  "You are not authorized to update this task",
		})
	}

	return c.JSON(http.StatusOK, taskUpdatedResponse{Message: "Task updated successfully", Task: task})
}

func (s *HTTPServer) deleteTask(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	err = s.tasks.Delete(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return serviceError(err, map[error]string{
			common.ErrorNotFound:  "Task not found",
			common.ErrorForbidden: "You are not authorized to delete this task",
		})
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Task deleted"})
}
