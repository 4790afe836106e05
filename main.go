package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/sunthewhat/easy-event-api/api"
	"github.com/sunthewhat/easy-event-api/common"
	"github.com/sunthewhat/easy-event-api/common/config"
	"github.com/sunthewhat/easy-event-api/common/gorm"
	"github.com/sunthewhat/easy-event-api/common/mongo"
	"github.com/sunthewhat/easy-event-api/common/util"
	"github.com/sunthewhat/easy-event-api/internal/renderer"
)

func main() {
	isPushDB := flag.Bool("PushDB", false, "Run database migration")
	isRunAfter := flag.Bool("Run", false, "Run after db process")
	flag.Parse()
	config.LoadConfig()
	if *isPushDB {
		gorm.Push_db()
		if !*isRunAfter {
			return
		}
	}

	gorm.InitGorm()
	mongo.InitMongo()

	if err := util.InitMinIO(); err != nil {
		slog.Error("Failed to initialize MinIO", "error", err)
		os.Exit(1)
	}
	util.InitDialer()

	signer, err := renderer.NewDocumentSigner(common.Config)
	if err != nil {
		slog.Error("Failed to initialize document signer", "error", err)
		os.Exit(1)
	}

	api.InitFiber(api.NewControllers(signer))
}
