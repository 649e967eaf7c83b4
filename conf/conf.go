package conf

import (
	"fmt"
	"os"
	"time"
)

type Conf struct {
	ListenAddr string
	JwtKey     []byte

	AwsRegion string

	UserTableName      string
	ChallengeTableName string
	QuestionTableName  string
	TestCaseTableName  string
	SubmTableName      string
	ProgressTableName  string

	PistonBaseUrl  string
	PistonTimeout  time.Duration
	AllowedOrigins []string
}

// FromEnv reads configuration from environment variables.
// JWT_KEY is the only variable without a default.
func FromEnv() (*Conf, error) {
	jwtKey := os.Getenv("JWT_KEY")
	if jwtKey == "" {
		return nil, fmt.Errorf("JWT_KEY is not set")
	}

	pistonTimeout := 20 * time.Second
	if v := os.Getenv("PISTON_TIMEOUT"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PISTON_TIMEOUT: %w", err)
		}
		pistonTimeout = parsed
	}

	return &Conf{
		ListenAddr: getEnv("LISTEN_ADDR", ":8080"),
		JwtKey:     []byte(jwtKey),

		AwsRegion: getEnv("AWS_REGION", "eu-central-1"),

		UserTableName:      getEnv("DDB_USER_TABLE", "CodeclashUsers"),
		ChallengeTableName: getEnv("DDB_CHALLENGE_TABLE", "CodeclashChallenges"),
		QuestionTableName:  getEnv("DDB_QUESTION_TABLE", "CodeclashQuestions"),
		TestCaseTableName:  getEnv("DDB_TESTCASE_TABLE", "CodeclashTestCases"),
		SubmTableName:      getEnv("DDB_SUBM_TABLE", "CodeclashSubmissions"),
		ProgressTableName:  getEnv("DDB_PROGRESS_TABLE", "CodeclashProgress"),

		PistonBaseUrl:  getEnv("PISTON_BASE_URL", "https://emkc.org/api/v2/piston"),
		PistonTimeout:  pistonTimeout,
		AllowedOrigins: []string{getEnv("CLIENT_URL", "http://localhost:3000")},
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
