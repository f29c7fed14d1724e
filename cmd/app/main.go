package main

import (
	"fmt"
	nethttp "net/http"
	"os"

	"foodorder/cmd"
	"foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/postgres/accountrepo"
	"foodorder/internal/adapters/out/postgres/chatrepo"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/adapters/out/postgres/productrepo"
	"foodorder/internal/jobs"
	"foodorder/internal/pkg/logging"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := logging.New()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	reportJob, err := jobs.NewReportRefreshJob(app.CreateGetOrderStatsQueryHandler(), logger)
	if err != nil {
		log.Fatalf("Error creating report refresh job: %v", err)
	}
	if err := reportJob.Start(); err != nil {
		log.Fatalf("Error starting report refresh job: %v", err)
	}
	defer reportJob.Stop()

	server := http.NewServer(http.Handlers{
		Checkout:        app.CreateCheckoutCommandHandler(),
		StartCooking:    app.CreateStartCookingCommandHandler(),
		MarkOrderReady:  app.CreateMarkOrderReadyCommandHandler(),
		AssignDriver:    app.CreateAssignDriverCommandHandler(),
		AcceptDelivery:  app.CreateAcceptDeliveryCommandHandler(),
		ConfirmDelivery: app.CreateConfirmDeliveryCommandHandler(),
		CancelOrder:     app.CreateCancelOrderCommandHandler(),
		PostChatMessage: app.CreatePostChatMessageCommandHandler(),
		ChangeRole:      app.CreateChangeRoleCommandHandler(),

		GetOrderStats:     app.CreateGetOrderStatsQueryHandler(),
		GetActiveOrders:   app.CreateGetActiveOrdersQueryHandler(),
		GetDriverOrders:   app.CreateGetDriverOrdersQueryHandler(),
		GetCustomerOrders: app.CreateGetCustomerOrdersQueryHandler(),
		GetChatHistory:    app.CreateGetChatHistoryQueryHandler(),
	}, reportJob)

	startWebServer(server, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&productrepo.ProductDTO{},
		&accountrepo.AccountDTO{},
		&chatrepo.MessageDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return gormDB
}

func startWebServer(server *http.Server, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})

	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
