package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"portfolio-be/internal/config"
	"portfolio-be/internal/content"
	"portfolio-be/internal/contentstore"
	"portfolio-be/internal/controller"
	"portfolio-be/internal/editor"
	"portfolio-be/internal/entity"
	"portfolio-be/internal/pkg/logger"
	"portfolio-be/internal/pkg/mailer"
	"portfolio-be/internal/repository/contract"
	"portfolio-be/internal/service"

	pktNats "portfolio-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	AuthController       controller.IAuthController
	PortfolioController  controller.IPortfolioController
	ContactController    controller.IContactController
	AdminController      controller.IAdminController
	PostController       controller.ICollectionController
	ExperienceController controller.ICollectionController

	// Shared services used by middleware and pages
	SessionGate  service.ISessionGate
	OAuthService service.IOAuthService
	Store        *contentstore.Store
	Logger       logger.ILogger

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	closers []func() error
}

// Options carries collaborators tests may want to replace.
type Options struct {
	HTTPClient    *http.Client
	InboxLogger   logger.ILogger
	EditorOptions []editor.Option
}

func NewContainer(cfg *config.Config, repo contract.KeyValueRepository, sysLogger logger.ILogger, opts Options) (*Container, error) {
	// 1. Content store
	store := contentstore.New(repo, contentstore.NewAcknowledger(contentstore.AckTTL), sysLogger)
	posts := contentstore.NewCollection[entity.Post](store, contentstore.KeyPosts)
	experiences := contentstore.NewCollection[entity.ExperienceEntry](store, contentstore.KeyExperiences)

	defaults, err := content.Default()
	if err != nil {
		return nil, fmt.Errorf("load default portfolio: %w", err)
	}

	// 2. Event bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)

	c := &Container{Store: store, Logger: sysLogger}
	c.closers = append(c.closers, pubSub.Close)

	var bus service.EventPublisher
	if cfg.Events.NatsURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		natsPub, err := pktNats.NewPublisher(ctx, cfg.Events.NatsURL)
		cancel()
		if err != nil {
			sysLogger.Warn("Bootstrap", "NATS unavailable, content events stay in-process", map[string]interface{}{"error": err.Error()})
		} else {
			bus = natsPub
			c.closers = append(c.closers, func() error { natsPub.Close(); return nil })
		}
	}

	// 3. Services
	gate, err := service.NewSessionGate(store, cfg.Admin, sysLogger)
	if err != nil {
		return nil, err
	}
	oauthService := service.NewOAuthService(store, cfg.OAuth, cfg.Admin.Login, sysLogger)

	portfolioService := service.NewPortfolioService(defaults, posts, experiences)
	adminService := service.NewAdminService(store, posts, experiences, portfolioService, sysLogger)

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)
	inbox := opts.InboxLogger
	if inbox == nil {
		inbox = logger.NewIsolatedLogger(filepath.Join(filepath.Dir(cfg.App.LogFilePath), "contact.log"))
	}
	contactService := service.NewContactService(cfg.Contact, opts.HTTPClient, emailService, inbox, sysLogger)

	publisherService := service.NewPublisherService(cfg.Events.ContentTopic, pubSub)
	store.Subscribe(portfolioService)
	store.Subscribe(service.NewContentEventPublisher(publisherService, bus, sysLogger))
	c.ConsumerService = service.NewCacheInvalidator(pubSub, cfg.Events.ContentTopic, portfolioService, sysLogger)

	// 4. Editing workflows, one per collection
	postWorkflow := editor.NewWorkflow[entity.Post](editor.PostKind{}, posts, opts.EditorOptions...)
	experienceWorkflow := editor.NewWorkflow[entity.ExperienceEntry](editor.ExperienceKind{}, experiences, opts.EditorOptions...)

	// 5. Controllers
	c.SessionGate = gate
	c.OAuthService = oauthService
	c.AuthController = controller.NewAuthController(gate, oauthService, cfg.IsProduction())
	c.PortfolioController = controller.NewPortfolioController(portfolioService)
	c.ContactController = controller.NewContactController(contactService)
	c.AdminController = controller.NewAdminController(adminService)
	c.PostController = controller.NewCollectionController[entity.Post]("/posts", postWorkflow, store)
	c.ExperienceController = controller.NewCollectionController[entity.ExperienceEntry]("/experience", experienceWorkflow, store)

	return c, nil
}

// AddCloser registers a resource to release on Close.
func (c *Container) AddCloser(fn func() error) {
	c.closers = append(c.closers, fn)
}

// Close releases resources in reverse order of acquisition.
func (c *Container) Close() error {
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
