package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/talentprobe/internal/catalog"
	"github.com/KirkDiggler/talentprobe/internal/common/clock"
	"github.com/KirkDiggler/talentprobe/internal/common/uuid"
	"github.com/KirkDiggler/talentprobe/internal/config"
	"github.com/KirkDiggler/talentprobe/internal/dice"
	"github.com/KirkDiggler/talentprobe/internal/handlers/discord"
	characterRepo "github.com/KirkDiggler/talentprobe/internal/repositories/character"
	rollLogRepo "github.com/KirkDiggler/talentprobe/internal/repositories/roll_log"
	characterService "github.com/KirkDiggler/talentprobe/internal/services/character"
	"github.com/KirkDiggler/talentprobe/internal/services/messaging"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// A .env file is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(cfg.RedisOptions())

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	characters, err := characterRepo.NewRedis(&characterRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create character repository: %v", err)
	}

	rollLog, err := rollLogRepo.NewRedis(&rollLogRepo.Config{
		RedisClient: redisClient,
		MaxEntries:  cfg.RollLogMaxEntries,
	})
	if err != nil {
		log.Fatalf("Failed to create roll log repository: %v", err)
	}

	talents, err := catalog.Load(&catalog.Config{
		Path: cfg.TalentCatalogPath,
	})
	if err != nil {
		log.Fatalf("Failed to load talent catalog: %v", err)
	}
	log.Printf("Loaded %d talents in %d categories", len(talents.Skills()), len(talents.Categories()))

	// Initialize dice roller
	diceRoller := dice.New(&dice.Config{
		Seed: cfg.DiceSeed,
	})

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{
		Seed: cfg.DiceSeed,
	})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	characterSvc, err := characterService.New(&characterService.Config{
		DefaultAttributeValue: cfg.DefaultAttributeValue,
		Catalog:               talents,
		CharacterRepo:         characters,
		RollLogRepo:           rollLog,
		Messaging:             messagingSvc,
		DiceRoller:            diceRoller,
		Clock:                 clock.New(),
		UUIDGenerator:         uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create character service: %v", err)
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:            cfg.DiscordToken,
		ApplicationID:    cfg.DiscordAppID,
		GuildID:          cfg.DiscordGuildID,
		CharacterService: characterSvc,
		MessagingService: messagingSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Bot has been shut down")
}
