package app

import (
	projectRepository "github.com/allisson/hdrivault/internal/project/repository"
	projectService "github.com/allisson/hdrivault/internal/project/service"
	projectUsecase "github.com/allisson/hdrivault/internal/project/usecase"
)

// ProjectUseCase returns the project persistence use case.
func (c *Container) ProjectUseCase() (projectUsecase.ProjectUseCase, error) {
	var err error
	c.projectUseCaseInit.Do(func() {
		cipher, cipherErr := c.EnvelopeCipher()
		if cipherErr != nil {
			err = cipherErr
			c.initErrors["projectUseCase"] = cipherErr
			return
		}

		c.projectUseCase = projectUsecase.NewProjectUseCase(
			projectRepository.NewFileRepository(),
			projectService.NewSerializer(cipher),
			projectService.NewMigrator(cipher),
			c.Logger(),
		)
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["projectUseCase"]; exists {
		return nil, storedErr
	}
	return c.projectUseCase, nil
}
