package api

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	docs "github.com/mativale/boda-api/docs"
	"github.com/mativale/boda-api/internal/config"
	"github.com/mativale/boda-api/internal/controller"
	"github.com/mativale/boda-api/internal/service"
	"github.com/mativale/boda-api/internal/sheets"
	"github.com/mativale/boda-api/pkg/email"
	"github.com/mativale/boda-api/pkg/sms"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

var (
	routerHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "api")})
	routerLogger  = slog.New(routerHandler)
)

const (
	ScopeName = "github.com/mativale/boda-api/internal/api"
)

var (
	nombreRegexp  = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ\s]+$`)
	celularRegexp = regexp.MustCompile(`^[+]?[0-9\s\-()]{8,20}$`)
)

func InitRoutes(cfg *config.Config) *gin.Engine {
	routerLogger.Info("Gin cold start")
	r := gin.Default()

	// wrong verbs on a fixed-method endpoint get the 405 envelope
	r.HandleMethodNotAllowed = true

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// error paths must use the json field names, e.g. mainAttendee.name
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		v.RegisterValidation("nombre", func(fl validator.FieldLevel) bool {
			return nombreRegexp.MatchString(fl.Field().String())
		})

		v.RegisterValidation("celular", func(fl validator.FieldLevel) bool {
			return celularRegexp.MatchString(fl.Field().String())
		})
	}

	corsConfig := cors.DefaultConfig()

	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowHeaders = []string{"*"}
	corsConfig.AddAllowMethods("OPTIONS", "GET", "POST")

	r.Use(otelgin.Middleware(ScopeName))

	r.Use(cors.New(corsConfig))

	r.Use(requestIdMiddleware())

	// SWAGGER
	docs.SwaggerInfo.BasePath = ""
	{
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
	}

	initControllers(cfg)

	// API ROUTER
	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/rsvp", controller.PostRsvp)
		apiGroup.GET("/test-sheets", controller.TestSheets)
		apiGroup.GET("/event", controller.GetEvent)
	}

	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"message": controller.MsgMethodNotAllowed})
	})

	return r
}

// initControllers builds the concrete wiring from the configuration
// and hands it to the controllers.
func initControllers(cfg *config.Config) {
	store := sheets.NewClient(context.Background(), cfg.GoogleServiceAccountKey, cfg.GoogleSheetId)

	var notifier *service.NotifierService

	if cfg.Mailgun != nil || cfg.Whatsapp != nil {
		var (
			emailSender        service.EmailSender
			emailFrom, emailTo string
			msgSender          service.MessageSender
			msgTo              string
		)

		if cfg.Mailgun != nil {
			emailSender = email.NewEmailService(&email.EmailSvcOpts{
				Domain: cfg.Mailgun.Domain,
				ApiKey: cfg.Mailgun.ApiKey,
			})
			emailFrom = cfg.Mailgun.From
			emailTo = cfg.Mailgun.To
		}

		if cfg.Whatsapp != nil {
			msgSender = sms.MustInitMsgSvc(cfg.Whatsapp.MessagingServiceId)
			msgTo = cfg.Whatsapp.To
		}

		notifier = service.NewNotifierService(emailSender, emailFrom, emailTo, msgSender, msgTo)
	}

	controller.Init(
		service.NewRsvpService(store, notifier),
		service.NewSheetsDiagService(store),
		controller.EventInfo{Date: cfg.WeddingDate, Venue: cfg.WeddingVenue},
	)
}
