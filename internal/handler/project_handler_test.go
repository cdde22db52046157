package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "enso/internal/errors"
	"enso/internal/models"
	"enso/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewProjectHandler(t *testing.T) {
	mockService := &mocks.MockProjectService{}
	handler := NewProjectHandler(mockService)

	assert.NotNil(t, handler)
	assert.Equal(t, mockService, handler.service)
}

func TestProjectHandler_CreateProject(t *testing.T) {
	teamID := primitive.NewObjectID()
	userID := primitive.NewObjectID()
	projectID := primitive.NewObjectID()
	now := time.Now()

	tests := []struct {
		name           string
		teamID         *primitive.ObjectID
		userID         string
		body           interface{}
		mockSetup      func(*mocks.MockProjectService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:   "successful create project",
			teamID: &teamID,
			userID: userID.Hex(),
			body: models.CreateProjectRequest{
				Title:      "Autumn catalogue",
				Visibility: models.VisibilityPrivate,
			},
			mockSetup: func(m *mocks.MockProjectService) {
				m.CreateProjectFunc = func(ctx context.Context, tID, uID primitive.ObjectID, req *models.CreateProjectRequest) (*models.ProjectWithPermissions, error) {
					assert.Equal(t, teamID, tID)
					assert.Equal(t, userID, uID)
					return &models.ProjectWithPermissions{
						Project: models.Project{
							ID:            projectID,
							TeamID:        tID,
							OwnerID:       uID,
							Collaborators: []primitive.ObjectID{uID},
							Title:         req.Title,
							Status:        models.ProjectIdea,
							Visibility:    req.Visibility,
							Layout:        models.LayoutManuscript,
							CreatedAt:     now,
							UpdatedAt:     now,
						},
						Permissions: models.ProjectPermissions{
							CanView: true, CanEdit: true, CanDelete: true,
							CanManageCollaborators: true,
							UserRole:               models.PermissionOwner,
						},
					}, nil
				}
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				data := resp["data"].(map[string]interface{})
				project := data["project"].(map[string]interface{})
				assert.Equal(t, "Autumn catalogue", project["title"])
				assert.Equal(t, "Idea", project["status"])
				perms := data["permissions"].(map[string]interface{})
				assert.Equal(t, "owner", perms["userRole"])
			},
		},
		{
			name:           "missing team ID in context",
			teamID:         nil,
			userID:         userID.Hex(),
			body:           models.CreateProjectRequest{Title: "X", Visibility: models.VisibilityPrivate},
			mockSetup:      func(m *mocks.MockProjectService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing user ID",
			teamID:         &teamID,
			userID:         "",
			body:           models.CreateProjectRequest{Title: "X", Visibility: models.VisibilityPrivate},
			mockSetup:      func(m *mocks.MockProjectService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid visibility rejected by validation",
			teamID:         &teamID,
			userID:         userID.Hex(),
			body:           map[string]string{"title": "X", "visibility": "public"},
			mockSetup:      func(m *mocks.MockProjectService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "viewer cannot create projects",
			teamID: &teamID,
			userID: userID.Hex(),
			body:   models.CreateProjectRequest{Title: "X", Visibility: models.VisibilityPrivate},
			mockSetup: func(m *mocks.MockProjectService) {
				m.CreateProjectFunc = func(ctx context.Context, tID, uID primitive.ObjectID, req *models.CreateProjectRequest) (*models.ProjectWithPermissions, error) {
					return nil, apperrors.ErrInsufficientPermissions
				}
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "internal server error",
			teamID: &teamID,
			userID: userID.Hex(),
			body:   models.CreateProjectRequest{Title: "X", Visibility: models.VisibilityPrivate},
			mockSetup: func(m *mocks.MockProjectService) {
				m.CreateProjectFunc = func(ctx context.Context, tID, uID primitive.ObjectID, req *models.CreateProjectRequest) (*models.ProjectWithPermissions, error) {
					return nil, errors.New("database error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockProjectService{}
			tt.mockSetup(mockService)

			handler := NewProjectHandler(mockService)

			router := gin.New()
			handlers := []gin.HandlerFunc{}
			if tt.teamID != nil {
				handlers = append(handlers, setTeamID(*tt.teamID))
			}
			if tt.userID != "" {
				handlers = append(handlers, setUserID(tt.userID))
			}
			handlers = append(handlers, handler.CreateProject)
			router.POST("/teams/:teamId/projects", handlers...)

			var body []byte
			switch v := tt.body.(type) {
			case string:
				body = []byte(v)
			default:
				body, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/teams/"+teamID.Hex()+"/projects", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestProjectHandler_ListProjects(t *testing.T) {
	teamID := primitive.NewObjectID()
	userID := primitive.NewObjectID()

	t.Run("lists visible projects", func(t *testing.T) {
		mockService := &mocks.MockProjectService{
			ListProjectsFunc: func(ctx context.Context, tID, uID primitive.ObjectID) (*models.ProjectListResponse, error) {
				assert.Equal(t, teamID, tID)
				assert.Equal(t, userID, uID)
				return &models.ProjectListResponse{
					Items: []models.ProjectWithPermissions{
						{Project: models.Project{ID: primitive.NewObjectID(), Title: "Visible"}},
					},
				}, nil
			},
		}

		handler := NewProjectHandler(mockService)

		router := gin.New()
		router.GET("/teams/:teamId/projects", setTeamID(teamID), setUserID(userID.Hex()), handler.ListProjects)

		req := httptest.NewRequest(http.MethodGet, "/teams/"+teamID.Hex()+"/projects", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp["data"].(map[string]interface{})
		assert.Len(t, data["items"], 1)
	})

	t.Run("not a team member", func(t *testing.T) {
		mockService := &mocks.MockProjectService{
			ListProjectsFunc: func(ctx context.Context, tID, uID primitive.ObjectID) (*models.ProjectListResponse, error) {
				return nil, apperrors.ErrNotTeamMember
			},
		}

		handler := NewProjectHandler(mockService)

		router := gin.New()
		router.GET("/teams/:teamId/projects", setTeamID(teamID), setUserID(userID.Hex()), handler.ListProjects)

		req := httptest.NewRequest(http.MethodGet, "/teams/"+teamID.Hex()+"/projects", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestProjectHandler_GetProject(t *testing.T) {
	userID := primitive.NewObjectID()
	projectID := primitive.NewObjectID()

	tests := []struct {
		name           string
		projectID      string
		mockSetup      func(*mocks.MockProjectService)
		expectedStatus int
	}{
		{
			name:      "successful get project",
			projectID: projectID.Hex(),
			mockSetup: func(m *mocks.MockProjectService) {
				m.GetProjectFunc = func(ctx context.Context, pID, uID primitive.ObjectID) (*models.ProjectWithPermissions, error) {
					assert.Equal(t, projectID, pID)
					assert.Equal(t, userID, uID)
					return &models.ProjectWithPermissions{
						Project:     models.Project{ID: pID, Title: "Autumn catalogue"},
						Permissions: models.ProjectPermissions{CanView: true, UserRole: models.PermissionViewer},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid project id",
			projectID:      "not-an-id",
			mockSetup:      func(m *mocks.MockProjectService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:      "hidden project reads as not found",
			projectID: projectID.Hex(),
			mockSetup: func(m *mocks.MockProjectService) {
				m.GetProjectFunc = func(ctx context.Context, pID, uID primitive.ObjectID) (*models.ProjectWithPermissions, error) {
					return nil, apperrors.ErrProjectNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:      "internal server error",
			projectID: projectID.Hex(),
			mockSetup: func(m *mocks.MockProjectService) {
				m.GetProjectFunc = func(ctx context.Context, pID, uID primitive.ObjectID) (*models.ProjectWithPermissions, error) {
					return nil, errors.New("database error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockProjectService{}
			tt.mockSetup(mockService)

			handler := NewProjectHandler(mockService)

			router := gin.New()
			router.GET("/projects/:id", setUserID(userID.Hex()), handler.GetProject)

			req := httptest.NewRequest(http.MethodGet, "/projects/"+tt.projectID, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestProjectHandler_UpdateProject(t *testing.T) {
	userID := primitive.NewObjectID()
	projectID := primitive.NewObjectID()
	newTitle := "Winter catalogue"

	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockProjectService)
		expectedStatus int
	}{
		{
			name: "successful update",
			body: models.UpdateProjectRequest{Title: &newTitle},
			mockSetup: func(m *mocks.MockProjectService) {
				m.UpdateProjectFunc = func(ctx context.Context, pID, uID primitive.ObjectID, req *models.UpdateProjectRequest) (*models.ProjectWithPermissions, error) {
					return &models.ProjectWithPermissions{
						Project:     models.Project{ID: pID, Title: *req.Title},
						Permissions: models.ProjectPermissions{CanView: true, CanEdit: true, UserRole: models.PermissionCollaborator},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid JSON body",
			body:           "invalid json",
			mockSetup:      func(m *mocks.MockProjectService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "view-only caller is refused",
			body: models.UpdateProjectRequest{Title: &newTitle},
			mockSetup: func(m *mocks.MockProjectService) {
				m.UpdateProjectFunc = func(ctx context.Context, pID, uID primitive.ObjectID, req *models.UpdateProjectRequest) (*models.ProjectWithPermissions, error) {
					return nil, apperrors.ErrProjectAccessDenied
				}
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "project not found",
			body: models.UpdateProjectRequest{Title: &newTitle},
			mockSetup: func(m *mocks.MockProjectService) {
				m.UpdateProjectFunc = func(ctx context.Context, pID, uID primitive.ObjectID, req *models.UpdateProjectRequest) (*models.ProjectWithPermissions, error) {
					return nil, apperrors.ErrProjectNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockProjectService{}
			tt.mockSetup(mockService)

			handler := NewProjectHandler(mockService)

			router := gin.New()
			router.PUT("/projects/:id", setUserID(userID.Hex()), handler.UpdateProject)

			var body []byte
			switch v := tt.body.(type) {
			case string:
				body = []byte(v)
			default:
				body, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPut, "/projects/"+projectID.Hex(), bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestProjectHandler_DeleteProject(t *testing.T) {
	userID := primitive.NewObjectID()
	projectID := primitive.NewObjectID()

	tests := []struct {
		name           string
		mockSetup      func(*mocks.MockProjectService)
		expectedStatus int
	}{
		{
			name: "successful delete",
			mockSetup: func(m *mocks.MockProjectService) {
				m.DeleteProjectFunc = func(ctx context.Context, pID, uID primitive.ObjectID) error {
					return nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "collaborator cannot delete",
			mockSetup: func(m *mocks.MockProjectService) {
				m.DeleteProjectFunc = func(ctx context.Context, pID, uID primitive.ObjectID) error {
					return apperrors.ErrProjectAccessDenied
				}
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "project not found",
			mockSetup: func(m *mocks.MockProjectService) {
				m.DeleteProjectFunc = func(ctx context.Context, pID, uID primitive.ObjectID) error {
					return apperrors.ErrProjectNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockProjectService{}
			tt.mockSetup(mockService)

			handler := NewProjectHandler(mockService)

			router := gin.New()
			router.DELETE("/projects/:id", setUserID(userID.Hex()), handler.DeleteProject)

			req := httptest.NewRequest(http.MethodDelete, "/projects/"+projectID.Hex(), nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestProjectHandler_AddCollaborator(t *testing.T) {
	userID := primitive.NewObjectID()
	projectID := primitive.NewObjectID()
	collaboratorID := primitive.NewObjectID()

	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockProjectService)
		expectedStatus int
	}{
		{
			name: "successful add",
			body: models.AddCollaboratorRequest{UserID: collaboratorID.Hex()},
			mockSetup: func(m *mocks.MockProjectService) {
				m.AddCollaboratorFunc = func(ctx context.Context, pID, uID primitive.ObjectID, req *models.AddCollaboratorRequest) (*models.Project, error) {
					assert.Equal(t, collaboratorID.Hex(), req.UserID)
					return &models.Project{
						ID:            pID,
						Collaborators: []primitive.ObjectID{uID, collaboratorID},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing user id in body",
			body:           map[string]string{},
			mockSetup:      func(m *mocks.MockProjectService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "collaborator outside the team",
			body: models.AddCollaboratorRequest{UserID: collaboratorID.Hex()},
			mockSetup: func(m *mocks.MockProjectService) {
				m.AddCollaboratorFunc = func(ctx context.Context, pID, uID primitive.ObjectID, req *models.AddCollaboratorRequest) (*models.Project, error) {
					return nil, apperrors.ErrNotTeamMember
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "caller cannot manage collaborators",
			body: models.AddCollaboratorRequest{UserID: collaboratorID.Hex()},
			mockSetup: func(m *mocks.MockProjectService) {
				m.AddCollaboratorFunc = func(ctx context.Context, pID, uID primitive.ObjectID, req *models.AddCollaboratorRequest) (*models.Project, error) {
					return nil, apperrors.ErrProjectAccessDenied
				}
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockProjectService{}
			tt.mockSetup(mockService)

			handler := NewProjectHandler(mockService)

			router := gin.New()
			router.POST("/projects/:id/collaborators", setUserID(userID.Hex()), handler.AddCollaborator)

			var body []byte
			switch v := tt.body.(type) {
			case string:
				body = []byte(v)
			default:
				body, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/projects/"+projectID.Hex()+"/collaborators", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestProjectHandler_RemoveCollaborator(t *testing.T) {
	userID := primitive.NewObjectID()
	projectID := primitive.NewObjectID()
	collaboratorID := primitive.NewObjectID()

	tests := []struct {
		name           string
		collaboratorID string
		mockSetup      func(*mocks.MockProjectService)
		expectedStatus int
	}{
		{
			name:           "successful remove",
			collaboratorID: collaboratorID.Hex(),
			mockSetup: func(m *mocks.MockProjectService) {
				m.RemoveCollaboratorFunc = func(ctx context.Context, pID, uID, cID primitive.ObjectID) (*models.Project, error) {
					assert.Equal(t, collaboratorID, cID)
					return &models.Project{ID: pID, Collaborators: []primitive.ObjectID{uID}}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid collaborator id",
			collaboratorID: "not-an-id",
			mockSetup:      func(m *mocks.MockProjectService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "owner cannot be removed",
			collaboratorID: collaboratorID.Hex(),
			mockSetup: func(m *mocks.MockProjectService) {
				m.RemoveCollaboratorFunc = func(ctx context.Context, pID, uID, cID primitive.ObjectID) (*models.Project, error) {
					return nil, apperrors.ErrOwnerAlwaysCollaborates
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "not a collaborator",
			collaboratorID: collaboratorID.Hex(),
			mockSetup: func(m *mocks.MockProjectService) {
				m.RemoveCollaboratorFunc = func(ctx context.Context, pID, uID, cID primitive.ObjectID) (*models.Project, error) {
					return nil, apperrors.ErrCollaboratorNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockProjectService{}
			tt.mockSetup(mockService)

			handler := NewProjectHandler(mockService)

			router := gin.New()
			router.DELETE("/projects/:id/collaborators/:userId", setUserID(userID.Hex()), handler.RemoveCollaborator)

			req := httptest.NewRequest(http.MethodDelete, "/projects/"+projectID.Hex()+"/collaborators/"+tt.collaboratorID, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestProjectHandler_AddBoardItem(t *testing.T) {
	userID := primitive.NewObjectID()
	projectID := primitive.NewObjectID()

	t.Run("text item is stored inline", func(t *testing.T) {
		mockService := &mocks.MockProjectService{
			AddBoardItemFunc: func(ctx context.Context, pID, uID primitive.ObjectID, req *models.AddBoardItemRequest) (*models.AddBoardItemResponse, error) {
				assert.Equal(t, models.BoardItemText, req.Type)
				return &models.AddBoardItemResponse{
					Item: models.BoardItem{
						ID:      primitive.NewObjectID(),
						Type:    req.Type,
						Content: req.Content,
					},
				}, nil
			},
		}

		handler := NewProjectHandler(mockService)

		router := gin.New()
		router.POST("/projects/:id/board", setUserID(userID.Hex()), handler.AddBoardItem)

		body, _ := json.Marshal(models.AddBoardItemRequest{
			Type:    models.BoardItemText,
			Content: "A circle, drawn in one breath.",
		})
		req := httptest.NewRequest(http.MethodPost, "/projects/"+projectID.Hex()+"/board", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp["data"].(map[string]interface{})
		assert.NotContains(t, data, "uploadUrl")
	})

	t.Run("image item returns an upload URL", func(t *testing.T) {
		mockService := &mocks.MockProjectService{
			AddBoardItemFunc: func(ctx context.Context, pID, uID primitive.ObjectID, req *models.AddBoardItemRequest) (*models.AddBoardItemResponse, error) {
				return &models.AddBoardItemResponse{
					Item: models.BoardItem{
						ID:      primitive.NewObjectID(),
						Type:    models.BoardItemImage,
						Content: "board-media/" + pID.Hex() + "/cover.png",
					},
					UploadURL: "https://s3.example.com/upload?sig=abc",
				}, nil
			},
		}

		handler := NewProjectHandler(mockService)

		router := gin.New()
		router.POST("/projects/:id/board", setUserID(userID.Hex()), handler.AddBoardItem)

		body, _ := json.Marshal(models.AddBoardItemRequest{
			Type:    models.BoardItemImage,
			Content: "cover.png",
		})
		req := httptest.NewRequest(http.MethodPost, "/projects/"+projectID.Hex()+"/board", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp["data"].(map[string]interface{})
		assert.Equal(t, "https://s3.example.com/upload?sig=abc", data["uploadUrl"])
	})

	t.Run("unknown type rejected by validation", func(t *testing.T) {
		handler := NewProjectHandler(&mocks.MockProjectService{})

		router := gin.New()
		router.POST("/projects/:id/board", setUserID(userID.Hex()), handler.AddBoardItem)

		req := httptest.NewRequest(http.MethodPost, "/projects/"+projectID.Hex()+"/board",
			bytes.NewBufferString(`{"type":"video","content":"clip.mp4"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProjectHandler_RemoveBoardItem(t *testing.T) {
	userID := primitive.NewObjectID()
	projectID := primitive.NewObjectID()
	itemID := primitive.NewObjectID()

	tests := []struct {
		name           string
		itemID         string
		mockSetup      func(*mocks.MockProjectService)
		expectedStatus int
	}{
		{
			name:   "successful remove",
			itemID: itemID.Hex(),
			mockSetup: func(m *mocks.MockProjectService) {
				m.RemoveBoardItemFunc = func(ctx context.Context, pID, uID, iID primitive.ObjectID) error {
					assert.Equal(t, itemID, iID)
					return nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid item id",
			itemID:         "not-an-id",
			mockSetup:      func(m *mocks.MockProjectService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "item not found",
			itemID: itemID.Hex(),
			mockSetup: func(m *mocks.MockProjectService) {
				m.RemoveBoardItemFunc = func(ctx context.Context, pID, uID, iID primitive.ObjectID) error {
					return apperrors.ErrBoardItemNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockProjectService{}
			tt.mockSetup(mockService)

			handler := NewProjectHandler(mockService)

			router := gin.New()
			router.DELETE("/projects/:id/board/:itemId", setUserID(userID.Hex()), handler.RemoveBoardItem)

			req := httptest.NewRequest(http.MethodDelete, "/projects/"+projectID.Hex()+"/board/"+tt.itemID, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
