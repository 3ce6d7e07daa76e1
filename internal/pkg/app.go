package pkg

import (
	"os"

	"github.com/sirupsen/logrus"

	"shop/internal/app/config"
	"shop/internal/app/handler"
	"shop/internal/app/repository"
)

type Application struct {
	Config    *config.Config
	Directory *repository.Directory
	Auth      *handler.AuthHandler
}

func NewApp(c *config.Config) *Application {
	console := handler.NewConsole(os.Stdin, os.Stdout)
	directory := repository.NewDirectory(c.UsersFile)

	// a fresh catalog instance per login, re-read from file
	newInventory := func() *repository.Inventory {
		return repository.NewInventory(c.ProductsFile)
	}

	return &Application{
		Config:    c,
		Directory: directory,
		Auth:      handler.NewAuthHandler(directory, console, newInventory),
	}
}

func (a *Application) RunApp() {
	logrus.Info("Shop start up")

	a.Auth.Run()

	// persist the account directory on the way out; the catalog is
	// saved only by the manager flow's Save and Exit
	if err := a.Directory.Save(); err != nil {
		logrus.Errorf("error saving user data to file: %v", err)
	}

	logrus.Info("Shop down")
}
