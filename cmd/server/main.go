package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/codeclash/backend/challenge"
	challengehttp "github.com/codeclash/backend/challenge/http"
	"github.com/codeclash/backend/conf"
	"github.com/codeclash/backend/execsrvc"
	"github.com/codeclash/backend/http"
	"github.com/codeclash/backend/question"
	questionhttp "github.com/codeclash/backend/question/http"
	"github.com/codeclash/backend/subm"
	submhttp "github.com/codeclash/backend/subm/http"
	"github.com/codeclash/backend/user"
	userhttp "github.com/codeclash/backend/user/http"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

func main() {
	_ = godotenv.Load()

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.TimeOnly,
	})))

	cfg, err := conf.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.AwsRegion))
	if err != nil {
		slog.Error("failed to load aws config", "error", err)
		os.Exit(1)
	}
	ddbClient := dynamodb.NewFromConfig(awsCfg)

	userRepo := user.NewDynamoDbUserTable(ddbClient, cfg.UserTableName)
	challengeRepo := challenge.NewDynamoDbChallengeTable(ddbClient, cfg.ChallengeTableName)
	questionRepo := question.NewDynamoDbQuestionTable(ddbClient, cfg.QuestionTableName)
	testCaseRepo := question.NewDynamoDbTestCaseTable(ddbClient, cfg.TestCaseTableName)
	submRepo := subm.NewDynamoDbSubmTable(ddbClient, cfg.SubmTableName)
	progressRepo := subm.NewDynamoDbProgressTable(ddbClient, cfg.ProgressTableName)

	userSrvc := user.NewUserSrvc(userRepo)
	challengeSrvc := challenge.NewChallengeSrvc(challengeRepo)
	questionSrvc := question.NewQuestionSrvc(questionRepo, testCaseRepo)

	runner := execsrvc.NewPistonClient(cfg.PistonBaseUrl, cfg.PistonTimeout)
	submSrvc := subm.NewSubmSrvc(runner, questionSrvc, submRepo, progressRepo)

	server := http.NewHttpServer(
		cfg.JwtKey,
		cfg.AllowedOrigins,
		userhttp.NewUserHttpHandler(userSrvc, cfg.JwtKey),
		challengehttp.NewChallengeHttpHandler(challengeSrvc),
		questionhttp.NewQuestionHttpHandler(questionSrvc),
		submhttp.NewSubmHttpHandler(submSrvc),
	)

	slog.Info("starting server", "address", cfg.ListenAddr)
	if err := server.Start(cfg.ListenAddr); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
