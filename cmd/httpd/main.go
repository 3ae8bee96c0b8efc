// dungeon-httpd serves generated dungeons as JSON. Build:
//
//	go build -o dungeon-httpd ./cmd/httpd
//
// Usage:
//
//	DUNGEON_HTTP_ADDR=:8080 ./dungeon-httpd
//	curl 'localhost:8080/api/dungeon?seed=42&width=64&height=48'
//
// Responses for explicit seeds are cached: the generator is deterministic,
// so a seed+parameter key fully identifies the result.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/halftheopposite/dungeon/internal/export"
	"github.com/halftheopposite/dungeon/internal/generate"
)

const cacheTTL = 15 * time.Minute

// response is the envelope every endpoint returns.
type response struct {
	Code      int    `json:"code"`
	Msg       string `json:"msg"`
	Timestamp int64  `json:"timestamp"`
	Data      any    `json:"data"`
}

const (
	codeSuccess   = 0
	codeBadParams = 1
	codeGenFailed = 2
)

// dungeonPayload is the cached unit: one generated dungeon with its id.
type dungeonPayload struct {
	ID      string            `json:"id"`
	Seed    int64             `json:"seed"`
	Dungeon export.DungeonDTO `json:"dungeon"`
}

var dungeonCache *ristretto.Cache[string, *dungeonPayload]

func main() {
	_ = godotenv.Load(".env")

	addr := os.Getenv("DUNGEON_HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	cache, err := ristretto.NewCache[string, *dungeonPayload](&ristretto.Config[string, *dungeonPayload]{
		NumCounters: 10000,
		MaxCost:     64 * 1024 * 1024,
		BufferItems: 64,
	})
	if err != nil {
		log.Fatalf("create cache: %v", err)
	}
	dungeonCache = cache

	r := gin.Default()
	r.GET("/api/dungeon", handleDungeon)

	log.Printf("dungeon HTTP server listening on %s", addr)
	log.Fatal(r.Run(addr))
}

func handleDungeon(c *gin.Context) {
	res := response{Code: codeSuccess, Msg: "success", Timestamp: time.Now().Unix()}

	cfg, seed, err := configFromQuery(c)
	if err != nil {
		res.Code = codeBadParams
		res.Msg = err.Error()
		c.JSON(http.StatusOK, res)
		return
	}

	// Only explicit seeds are cacheable; a clock seed is a one-off.
	key := ""
	if seed != 0 {
		key = cacheKey(cfg, seed)
		dungeonCache.Wait()
		if p, ok := dungeonCache.Get(key); ok {
			res.Data = p
			c.JSON(http.StatusOK, res)
			return
		}
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg.Rand = rand.New(rand.NewSource(seed))
	d, err := generate.Generate(cfg)
	if err != nil {
		res.Code = codeGenFailed
		res.Msg = err.Error()
		c.JSON(http.StatusOK, res)
		return
	}

	payload := &dungeonPayload{
		ID:      uuid.New().String(),
		Seed:    seed,
		Dungeon: export.Snapshot(d),
	}
	if key != "" {
		dungeonCache.SetWithTTL(key, payload, int64(cfg.MapWidth*cfg.MapHeight), cacheTTL)
	}
	res.Data = payload
	c.JSON(http.StatusOK, res)
}

// configFromQuery builds a generation config from query parameters,
// falling back to the preview defaults.
func configFromQuery(c *gin.Context) (generate.Config, int64, error) {
	var firstErr error
	intQ := func(name string, def int) int {
		raw := c.DefaultQuery(name, strconv.Itoa(def))
		v, err := strconv.Atoi(raw)
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("param %s: %v", name, err)
		}
		return v
	}
	floatQ := func(name string, def float64) float64 {
		raw := c.DefaultQuery(name, strconv.FormatFloat(def, 'f', -1, 64))
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("param %s: %v", name, err)
		}
		return v
	}

	seed, err := strconv.ParseInt(c.DefaultQuery("seed", "0"), 10, 64)
	if err != nil {
		return generate.Config{}, 0, fmt.Errorf("param seed: %v", err)
	}

	cfg := generate.Config{
		MapWidth:             intQ("width", 64),
		MapHeight:            intQ("height", 48),
		MapGutterWidth:       intQ("mapGutter", 1),
		Iterations:           intQ("iterations", 4),
		ContainerGutterWidth: intQ("containerGutter", 1),
		ContainerWidthRatio:  floatQ("widthRatio", 0.45),
		ContainerHeightRatio: floatQ("heightRatio", 0.45),
		RoomGutterWidth:      intQ("roomGutter", 1),
		RoomMaxMonsters:      intQ("maxMonsters", 4),
		RoomMinSize:          intQ("minRoom", 4),
		RoomHoleChance:       floatQ("holeChance", 0.3),
		CorridorWidth:        intQ("corridorWidth", 2),
		CorridorTrapChance:   floatQ("trapChance", 0.3),
	}
	if firstErr == nil {
		firstErr = cfg.Validate()
	}
	return cfg, seed, firstErr
}

func cacheKey(cfg generate.Config, seed int64) string {
	return fmt.Sprintf("%d|%d|%d|%d|%d|%d|%g|%g|%d|%d|%d|%g|%d|%g",
		seed, cfg.MapWidth, cfg.MapHeight, cfg.MapGutterWidth, cfg.Iterations,
		cfg.ContainerGutterWidth, cfg.ContainerWidthRatio, cfg.ContainerHeightRatio,
		cfg.RoomGutterWidth, cfg.RoomMaxMonsters, cfg.RoomMinSize,
		cfg.RoomHoleChance, cfg.CorridorWidth, cfg.CorridorTrapChance)
}
