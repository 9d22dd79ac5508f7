package handler

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"

	"github.com/dtroode/simple-twitter-server/internal/api/http/response"
	"github.com/dtroode/simple-twitter-server/internal/logger"
	"github.com/dtroode/simple-twitter-server/internal/model"
)

// UserService defines profile and account operations.
type UserService interface {
	GetProfile(ctx context.Context, userID, viewerID int64) (model.Profile, error)
	GetTweets(ctx context.Context, userID, viewerID int64) ([]model.TweetView, error)
	GetRepliedTweets(ctx context.Context, userID int64) ([]model.ReplyView, error)
	GetLikes(ctx context.Context, userID, viewerID int64) ([]model.LikeView, error)
	GetFollowings(ctx context.Context, userID int64) (model.FollowList, error)
	GetFollowers(ctx context.Context, userID int64) (model.FollowList, error)
	UpdateProfile(ctx context.Context, editor model.Identity, userID int64, params model.ProfileParams) (model.Identity, error)
	UpdateSettings(ctx context.Context, editor model.Identity, userID int64, params model.AccountSettingsParams) (model.Identity, error)
}

// User handles the authenticated /users endpoints.
type User struct {
	userService    UserService
	contextManager model.ContextManager
	maxUploadBytes int64
	logger         *logger.Logger
}

// NewUser creates a new User handler. Multipart bodies larger than
// maxUploadBytes are rejected.
func NewUser(userService UserService, contextManager model.ContextManager, maxUploadBytes int64, logger *logger.Logger) *User {
	return &User{
		userService:    userService,
		contextManager: contextManager,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// target resolves the viewer and the {id} user of a request.
func (h *User) target(r *http.Request) (model.Identity, int64, error) {
	viewer, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		return model.Identity{}, 0, model.ErrMissingToken
	}
	userID, err := pathID(r, "id", model.ErrUserNotFound)
	if err != nil {
		return model.Identity{}, 0, err
	}
	return viewer, userID, nil
}

func (h *User) GetProfile(w http.ResponseWriter, r *http.Request) {
	viewer, userID, err := h.target(r)
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	profile, err := h.userService.GetProfile(r.Context(), userID, viewer.ID)
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	response.JSON(w, http.StatusOK, newProfileDTO(profile))
}

func (h *User) GetTweets(w http.ResponseWriter, r *http.Request) {
	viewer, userID, err := h.target(r)
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	tweets, err := h.userService.GetTweets(r.Context(), userID, viewer.ID)
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	response.JSON(w, http.StatusOK, newTweetDTOs(tweets))
}

func (h *User) GetRepliedTweets(w http.ResponseWriter, r *http.Request) {
	_, userID, err := h.target(r)
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	replies, err := h.userService.GetRepliedTweets(r.Context(), userID)
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	response.JSON(w, http.StatusOK, newReplyDTOs(replies))
}

func (h *User) GetLikes(w http.ResponseWriter, r *http.Request) {
	viewer, userID, err := h.target(r)
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	likes, err := h.userService.GetLikes(r.Context(), userID, viewer.ID)
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	response.JSON(w, http.StatusOK, newLikeDTOs(likes))
}

func (h *User) GetFollowings(w http.ResponseWriter, r *http.Request) {
	_, userID, err := h.target(r)
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	list, err := h.userService.GetFollowings(r.Context(), userID)
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	response.JSON(w, http.StatusOK, newFollowingDTOs(list))
}

func (h *User) GetFollowers(w http.ResponseWriter, r *http.Request) {
	_, userID, err := h.target(r)
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	list, err := h.userService.GetFollowers(r.Context(), userID)
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	response.JSON(w, http.StatusOK, newFollowerDTOs(list))
}

type profileRequest struct {
	Name         *string `json:"name"`
	Introduction *string `json:"introduction"`
}

// UpdateProfile accepts multipart/form-data with optional name, introduction,
// avatar and cover parts, or a JSON body with the text fields only.
func (h *User) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	editor, userID, err := h.target(r)
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	params, cleanup, err := h.readProfile(w, r)
	if cleanup != nil {
		defer cleanup()
	}
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	user, err := h.userService.UpdateProfile(r.Context(), editor, userID, params)
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	response.JSON(w, http.StatusOK, response.Envelope{
		Status: response.StatusSuccess,
		User:   user,
	})
}

func (h *User) readProfile(w http.ResponseWriter, r *http.Request) (model.ProfileParams, func(), error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "multipart/form-data":
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return model.ProfileParams{}, nil, model.NewValidationError(model.MsgEmptyFields)
		}
		return model.ProfileParams{
			Name:         formValue(r.PostForm, "name"),
			Introduction: formValue(r.PostForm, "introduction"),
		}, nil, nil
	default:
		var req profileRequest
		if err := decodeBody(w, r, &req, nil); err != nil {
			return model.ProfileParams{}, nil, err
		}
		return model.ProfileParams{Name: req.Name, Introduction: req.Introduction}, nil, nil
	}

	if h.maxUploadBytes > 0 {
		if r.ContentLength > h.maxUploadBytes {
			return model.ProfileParams{}, nil, model.NewValidationError(model.MsgFileTooLarge)
		}
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	}
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return model.ProfileParams{}, nil, model.NewValidationError(model.MsgFileTooLarge)
		}
		return model.ProfileParams{}, nil, model.NewValidationError(model.MsgEmptyFields)
	}
	form := r.MultipartForm
	var opened []multipart.File
	cleanup := func() {
		for _, f := range opened {
			_ = f.Close()
		}
		_ = form.RemoveAll()
	}

	params := model.ProfileParams{
		Name:         formValue(form.Value, "name"),
		Introduction: formValue(form.Value, "introduction"),
	}

	for _, part := range []struct {
		name string
		dst  **model.Upload
	}{
		{name: "avatar", dst: &params.Avatar},
		{name: "cover", dst: &params.Cover},
	} {
		upload, f, err := formUpload(form, part.name)
		if err != nil {
			return model.ProfileParams{}, cleanup, err
		}
		if f != nil {
			opened = append(opened, f)
		}
		*part.dst = upload
	}

	return params, cleanup, nil
}

// formUpload opens the first file of the named part. A missing part yields nil.
func formUpload(form *multipart.Form, name string) (*model.Upload, multipart.File, error) {
	files := form.File[name]
	if len(files) == 0 {
		return nil, nil, nil
	}
	fh := files[0]

	contentType := fh.Header.Get("Content-Type")
	if mediaType, _, err := mime.ParseMediaType(contentType); err != nil || !isImage(mediaType) {
		return nil, nil, model.NewValidationError(model.MsgInvalidImage)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s upload: %w", name, err)
	}

	return &model.Upload{
		Filename:    fh.Filename,
		ContentType: contentType,
		Size:        fh.Size,
		Reader:      f,
	}, f, nil
}

// formValue returns the first value of a present field and nil otherwise.
func formValue(values map[string][]string, name string) *string {
	v, ok := values[name]
	if !ok || len(v) == 0 {
		return nil
	}
	return &v[0]
}

func isImage(mediaType string) bool {
	switch mediaType {
	case "image/jpeg", "image/png", "image/gif", "image/webp":
		return true
	default:
		return false
	}
}

type settingsRequest struct {
	Account       string `json:"account"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	CheckPassword string `json:"checkPassword"`
}

func (h *User) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	editor, userID, err := h.target(r)
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	var req settingsRequest
	err = decodeBody(w, r, &req, map[string]*string{
		"account":       &req.Account,
		"name":          &req.Name,
		"email":         &req.Email,
		"password":      &req.Password,
		"checkPassword": &req.CheckPassword,
	})
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	user, err := h.userService.UpdateSettings(r.Context(), editor, userID, model.AccountSettingsParams{
		Account:       req.Account,
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		CheckPassword: req.CheckPassword,
	})
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	response.JSON(w, http.StatusOK, response.Envelope{
		Status:  response.StatusSuccess,
		Message: model.MsgSettingsSuccess,
		User:    user,
	})
}
