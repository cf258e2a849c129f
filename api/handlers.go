package api

import (
	"github.com/rpupo63/portfolio-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(projectService services.ProjectService, publicService services.PublicService, authService services.AuthService) *routeHandlers {
	return &routeHandlers{
		projectHandler: newProjectHandler(projectService),
		skillHandler:   newSkillHandler(projectService),
		publicHandler:  newPublicHandler(publicService),
		authHandler:    newAuthHandler(authService),
	}
}
