package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/Syug0/LOL-team-assignment/internal/cache"
	"github.com/Syug0/LOL-team-assignment/internal/config"
	"github.com/Syug0/LOL-team-assignment/internal/constants"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

type RiotClient struct {
	apiKey      string
	platform    string
	region      string
	platformURL string
	regionURL   string
	client      *fasthttp.Client
	cache       *cache.Cache
	logger      zerolog.Logger
	rateLimitMu sync.RWMutex
	rateLimit   RateLimitInfo
}

// RateLimitInfo mirrors the last rate-limit headers Riot sent back,
// formatted as "limit:window,limit:window" (e.g. "20:1,100:120").
type RateLimitInfo struct {
	AppLimit    string    `json:"app_limit"`
	AppCount    string    `json:"app_count"`
	MethodLimit string    `json:"method_limit"`
	MethodCount string    `json:"method_count"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Option func(*RiotClient)

// WithBaseURLs overrides the platform (summoner/league) and regional (account/match) hosts.
func WithBaseURLs(platformURL, regionURL string) Option {
	return func(c *RiotClient) {
		c.platformURL = platformURL
		c.regionURL = regionURL
	}
}

func WithHTTPClient(client *fasthttp.Client) Option {
	return func(c *RiotClient) { c.client = client }
}

func NewRiotClient(cfg *config.Config, c *cache.Cache, logger zerolog.Logger) *RiotClient {
	return New(cfg, c, logger)
}

func New(cfg *config.Config, c *cache.Cache, logger zerolog.Logger, opts ...Option) *RiotClient {
	client := &RiotClient{
		apiKey:      cfg.RiotAPIKey,
		platform:    cfg.RiotPlatform,
		region:      cfg.RiotRegion,
		platformURL: fmt.Sprintf("https://%s.api.riotgames.com", cfg.RiotPlatform),
		regionURL:   fmt.Sprintf("https://%s.api.riotgames.com", cfg.RiotRegion),
		client: &fasthttp.Client{
			MaxConnsPerHost:     16,
			ReadTimeout:         constants.ExternalAPITimeout,
			WriteTimeout:        constants.ExternalAPITimeout,
			MaxIdleConnDuration: 1 * time.Minute,
		},
		cache:  c,
		logger: logger.With().Str("component", "riot").Logger(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

func (c *RiotClient) GetRateLimitInfo() RateLimitInfo {
	c.rateLimitMu.RLock()
	defer c.rateLimitMu.RUnlock()
	return c.rateLimit
}

func (c *RiotClient) updateRateLimit(resp *fasthttp.Response) {
	c.rateLimitMu.Lock()
	defer c.rateLimitMu.Unlock()

	if v := string(resp.Header.Peek("X-App-Rate-Limit")); v != "" {
		c.rateLimit.AppLimit = v
	}
	if v := string(resp.Header.Peek("X-App-Rate-Limit-Count")); v != "" {
		c.rateLimit.AppCount = v
	}
	if v := string(resp.Header.Peek("X-Method-Rate-Limit")); v != "" {
		c.rateLimit.MethodLimit = v
	}
	if v := string(resp.Header.Peek("X-Method-Rate-Limit-Count")); v != "" {
		c.rateLimit.MethodCount = v
	}
	c.rateLimit.UpdatedAt = time.Now()
}

func (c *RiotClient) AccountByRiotID(ctx context.Context, gameName, tagLine string) (AccountResponse, error) {
	u := fmt.Sprintf("%s/riot/account/v1/accounts/by-riot-id/%s/%s", c.regionURL, url.PathEscape(gameName), url.PathEscape(tagLine))
	key := fmt.Sprintf("account:%s:%s#%s", c.region, gameName, tagLine)
	return cachedRequest[AccountResponse](ctx, c, key, u)
}

func (c *RiotClient) SummonerByName(ctx context.Context, name string) (SummonerResponse, error) {
	u := fmt.Sprintf("%s/lol/summoner/v4/summoners/by-name/%s", c.platformURL, url.PathEscape(name))
	key := fmt.Sprintf("summoner-name:%s:%s", c.platform, name)
	return cachedRequest[SummonerResponse](ctx, c, key, u)
}

func (c *RiotClient) SummonerByPUUID(ctx context.Context, puuid string) (SummonerResponse, error) {
	u := fmt.Sprintf("%s/lol/summoner/v4/summoners/by-puuid/%s", c.platformURL, url.PathEscape(puuid))
	key := fmt.Sprintf("summoner-puuid:%s:%s", c.platform, puuid)
	return cachedRequest[SummonerResponse](ctx, c, key, u)
}

// LeagueEntries returns an empty slice for players unranked in every queue.
func (c *RiotClient) LeagueEntries(ctx context.Context, summonerID string) ([]LeagueEntryResponse, error) {
	u := fmt.Sprintf("%s/lol/league/v4/entries/by-summoner/%s", c.platformURL, url.PathEscape(summonerID))
	key := fmt.Sprintf("league:%s:%s", c.platform, summonerID)
	return cachedRequest[[]LeagueEntryResponse](ctx, c, key, u)
}

// MatchIDs returns up to count match ids, most recent first.
func (c *RiotClient) MatchIDs(ctx context.Context, puuid string, count int) ([]string, error) {
	u := fmt.Sprintf("%s/lol/match/v5/matches/by-puuid/%s/ids?start=0&count=%s", c.regionURL, url.PathEscape(puuid), strconv.Itoa(count))
	key := fmt.Sprintf("match-ids:%s:%s:%d", c.region, puuid, count)
	return cachedRequest[[]string](ctx, c, key, u)
}

func (c *RiotClient) Match(ctx context.Context, matchID string) (MatchResponse, error) {
	u := fmt.Sprintf("%s/lol/match/v5/matches/%s", c.regionURL, url.PathEscape(matchID))
	key := fmt.Sprintf("match:%s:%s", c.region, matchID)
	return cachedRequest[MatchResponse](ctx, c, key, u)
}

func cachedRequest[T any](ctx context.Context, client *RiotClient, key, url string) (T, error) {
	return cache.Fetch(ctx, client.cache, key, func(ctx context.Context) (T, error) {
		return doRequest[T](ctx, client, url)
	})
}

func doRequest[T any](ctx context.Context, client *RiotClient, url string) (T, error) {
	var result T

	if err := ctx.Err(); err != nil {
		return result, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(constants.RiotAPIKeyHeader, client.apiKey)

	start := time.Now()
	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return result, err
		}
	} else {
		if err := client.client.DoTimeout(req, resp, constants.ExternalAPITimeout); err != nil {
			return result, err
		}
	}

	client.updateRateLimit(resp)

	client.logger.Debug().
		Str("url", url).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("riot request")

	if code := resp.StatusCode(); code < fasthttp.StatusOK || code >= fasthttp.StatusMultipleChoices {
		return result, &APIError{StatusCode: code, Body: string(resp.Body()), URL: url}
	}

	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return result, fmt.Errorf("failed to decode %s: %w", url, err)
	}
	return result, nil
}
