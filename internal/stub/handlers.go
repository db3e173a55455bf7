package stub

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yoga-studio/front/internal/models"
	"github.com/yoga-studio/front/internal/repositories"
	"github.com/yoga-studio/front/internal/utils"
)

const (
	claimsKey = "claims"

	msgBadCredentials = "Bad credentials"
	msgUnauthorized   = "Full authentication is required to access this resource"
	msgEmailTaken     = "Error: Email is already taken!"
	msgRegistered     = "User registered successfully!"
)

// ---------- auth ----------

func (s *Server) login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.WriteErrorResponse(c, http.StatusBadRequest, "Invalid JSON")
		return
	}

	user, err := s.users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil || !utils.VerifyPassword(req.Password, user.PasswordHash) {
		utils.WriteErrorResponse(c, http.StatusUnauthorized, msgBadCredentials)
		return
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		s.logger.Error("failed to sign token", zap.Error(err))
		utils.WriteErrorResponse(c, http.StatusInternalServerError, "token generation failed")
		return
	}

	utils.WriteJSONResponse(c, http.StatusOK, models.SessionInformation{
		Token:     token,
		Type:      "Bearer",
		ID:        user.ID,
		Username:  user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Admin:     user.Admin,
	})
}

func (s *Server) register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.WriteErrorResponse(c, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Email == "" || req.Password == "" {
		utils.WriteErrorResponse(c, http.StatusBadRequest, "email and password are required")
		return
	}

	ctx := c.Request.Context()
	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		c.JSON(http.StatusBadRequest, models.MessageResponse{Message: msgEmailTaken})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.WriteErrorResponse(c, http.StatusInternalServerError, "password hashing failed")
		return
	}

	_, err = s.users.Create(ctx, &repositories.UserRecord{
		User: models.User{
			Email:     req.Email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
		},
		PasswordHash: hash,
	})
	if errors.Is(err, repositories.ErrEmailTaken) {
		c.JSON(http.StatusBadRequest, models.MessageResponse{Message: msgEmailTaken})
		return
	}
	if err != nil {
		utils.WriteErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: msgRegistered})
}

// authenticate requires a valid Bearer token on every /api route it guards.
func (s *Server) authenticate(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		utils.WriteErrorResponse(c, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	claims, err := s.tokens.Parse(token)
	if err != nil {
		s.logger.Debug("rejected token", zap.Error(err))
		utils.WriteErrorResponse(c, http.StatusUnauthorized, msgUnauthorized)
		return
	}
	c.Set(claimsKey, claims)
	c.Next()
}

// ---------- sessions ----------

func (s *Server) listSessions(c *gin.Context) {
	sessions, err := s.sessions.List(c.Request.Context())
	if err != nil {
		writeRepositoryError(c, err)
		return
	}
	utils.WriteJSONResponse(c, http.StatusOK, sessions)
}

func (s *Server) getSession(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	session, err := s.sessions.GetByID(c.Request.Context(), id)
	if err != nil {
		writeRepositoryError(c, err)
		return
	}
	utils.WriteJSONResponse(c, http.StatusOK, session)
}

func (s *Server) createSession(c *gin.Context) {
	var req models.Session
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.WriteErrorResponse(c, http.StatusBadRequest, "Invalid JSON")
		return
	}
	req.ID = 0
	session, err := s.sessions.Create(c.Request.Context(), &req)
	if err != nil {
		writeRepositoryError(c, err)
		return
	}
	utils.WriteJSONResponse(c, http.StatusOK, session)
}

func (s *Server) updateSession(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.Session
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.WriteErrorResponse(c, http.StatusBadRequest, "Invalid JSON")
		return
	}
	session, err := s.sessions.Update(c.Request.Context(), id, &req)
	if err != nil {
		writeRepositoryError(c, err)
		return
	}
	utils.WriteJSONResponse(c, http.StatusOK, session)
}

func (s *Server) deleteSession(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.sessions.Delete(c.Request.Context(), id); err != nil {
		writeRepositoryError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (s *Server) participate(c *gin.Context) {
	id, userID, ok := s.participation(c)
	if !ok {
		return
	}
	if err := s.sessions.AddParticipant(c.Request.Context(), id, userID); err != nil {
		writeRepositoryError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (s *Server) unParticipate(c *gin.Context) {
	id, userID, ok := s.participation(c)
	if !ok {
		return
	}
	if err := s.sessions.RemoveParticipant(c.Request.Context(), id, userID); err != nil {
		writeRepositoryError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// participation parses both path ids and checks that the user exists.
func (s *Server) participation(c *gin.Context) (int64, int64, bool) {
	id, ok := pathID(c, "id")
	if !ok {
		return 0, 0, false
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return 0, 0, false
	}
	if _, err := s.users.GetByID(c.Request.Context(), userID); err != nil {
		writeRepositoryError(c, err)
		return 0, 0, false
	}
	return id, userID, true
}

// ---------- teachers ----------

func (s *Server) listTeachers(c *gin.Context) {
	teachers, err := s.teachers.List(c.Request.Context())
	if err != nil {
		writeRepositoryError(c, err)
		return
	}
	utils.WriteJSONResponse(c, http.StatusOK, teachers)
}

func (s *Server) getTeacher(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	teacher, err := s.teachers.GetByID(c.Request.Context(), id)
	if err != nil {
		writeRepositoryError(c, err)
		return
	}
	utils.WriteJSONResponse(c, http.StatusOK, teacher)
}

// ---------- users ----------

func (s *Server) getUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user, err := s.users.GetByID(c.Request.Context(), id)
	if err != nil {
		writeRepositoryError(c, err)
		return
	}
	// never expose the password hash
	utils.WriteJSONResponse(c, http.StatusOK, user.User)
}

// deleteUser only lets the authenticated user delete their own account.
func (s *Server) deleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		writeRepositoryError(c, err)
		return
	}

	claims, _ := c.Get(claimsKey)
	if cl, ok := claims.(*Claims); !ok || !strings.EqualFold(cl.Subject, user.Email) {
		utils.WriteErrorResponse(c, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	if err := s.users.Delete(ctx, id); err != nil {
		writeRepositoryError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		utils.WriteErrorResponse(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}

func writeRepositoryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		utils.WriteErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, repositories.ErrAlreadyParticipating),
		errors.Is(err, repositories.ErrNotParticipating),
		errors.Is(err, repositories.ErrEmailTaken):
		utils.WriteErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		_ = c.Error(err)
		utils.WriteErrorResponse(c, http.StatusInternalServerError, err.Error())
	}
}
