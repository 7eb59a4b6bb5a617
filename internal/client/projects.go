package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gronnmann/fiken-go/internal/http"
	"github.com/gronnmann/fiken-go/pkg/fiken"
)

// ProjectsClient implements fiken.ProjectsClient.
type ProjectsClient struct {
	httpClient *http.Client
}

// NewProjectsClient creates a new projects client.
func NewProjectsClient(httpClient *http.Client) *ProjectsClient {
	return &ProjectsClient{httpClient: httpClient}
}

func projectsPath(companySlug string) string {
	return "/companies/" + companySlug + "/projects"
}

func projectPath(companySlug string, projectID int64) string {
	return projectsPath(companySlug) + "/" + strconv.FormatInt(projectID, 10)
}

// List implements fiken.ProjectsClient.List.
func (c *ProjectsClient) List(ctx context.Context, companySlug string, opts *fiken.ListOptions) (*fiken.Page[fiken.Project], error) {
	return listPage[fiken.Project](ctx, c.httpClient, projectsPath(companySlug), opts)
}

// ListAll implements fiken.ProjectsClient.ListAll.
func (c *ProjectsClient) ListAll(ctx context.Context, companySlug string, opts *fiken.ListOptions) ([]fiken.Project, error) {
	return listAll[fiken.Project](ctx, c.httpClient, projectsPath(companySlug), opts)
}

// Get implements fiken.ProjectsClient.Get.
func (c *ProjectsClient) Get(ctx context.Context, companySlug string, projectID int64) (*fiken.Project, error) {
	resp, err := c.httpClient.Get(ctx, projectPath(companySlug, projectID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting project: %w", err)
	}

	return decodeResponse[fiken.Project](resp)
}

// Create implements fiken.ProjectsClient.Create.
func (c *ProjectsClient) Create(ctx context.Context, companySlug string, request *fiken.ProjectRequest) (*fiken.Project, error) {
	return createAndFollow[fiken.Project](ctx, c.httpClient, projectsPath(companySlug), request)
}

// Update implements fiken.ProjectsClient.Update.
func (c *ProjectsClient) Update(ctx context.Context, companySlug string, projectID int64, request *fiken.ProjectRequest) (*fiken.Project, error) {
	resp, err := c.httpClient.Patch(ctx, projectPath(companySlug, projectID), request)
	if err != nil {
		return nil, fmt.Errorf("updating project: %w", err)
	}

	if len(resp.Body) == 0 {
		return c.Get(ctx, companySlug, projectID)
	}

	return decodeResponse[fiken.Project](resp)
}

// Delete implements fiken.ProjectsClient.Delete.
func (c *ProjectsClient) Delete(ctx context.Context, companySlug string, projectID int64) error {
	_, err := c.httpClient.Delete(ctx, projectPath(companySlug, projectID))
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}

	return nil
}
