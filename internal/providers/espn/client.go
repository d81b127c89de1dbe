package espn

import (
	"context"

	"github.com/cockroachdb/errors"
)

type jsonGetter interface {
	GetJSON(ctx context.Context, url string, dst any) error
}

// Client fetches raw ESPN payloads through a resilient JSON getter.
type Client struct {
	getter    jsonGetter
	endpoints Endpoints
}

// NewClient constructs a Client for the given endpoints.
func NewClient(getter jsonGetter, endpoints Endpoints) *Client {
	return &Client{getter: getter, endpoints: endpoints}
}

func (c *Client) Scoreboard(ctx context.Context) (*Scoreboard, error) {
	var out Scoreboard
	if err := c.getter.GetJSON(ctx, c.endpoints.Scoreboard(), &out); err != nil {
		return nil, errors.Wrap(err, "fetch scoreboard")
	}
	return &out, nil
}

func (c *Client) Roster(ctx context.Context, teamID int) (*Roster, error) {
	var out Roster
	if err := c.getter.GetJSON(ctx, c.endpoints.Roster(teamID), &out); err != nil {
		return nil, errors.Wrapf(err, "fetch roster for team %d", teamID)
	}
	return &out, nil
}

func (c *Client) Athlete(ctx context.Context, id string) (*AthleteResponse, error) {
	var out AthleteResponse
	if err := c.getter.GetJSON(ctx, c.endpoints.Athlete(id), &out); err != nil {
		return nil, errors.Wrapf(err, "fetch athlete %s", id)
	}
	return &out, nil
}

func (c *Client) Standings(ctx context.Context, group int) (*StandingsResponse, error) {
	var out StandingsResponse
	if err := c.getter.GetJSON(ctx, c.endpoints.Standings(group), &out); err != nil {
		return nil, errors.Wrapf(err, "fetch standings group %d", group)
	}
	return &out, nil
}

func (c *Client) Teams(ctx context.Context) (*TeamsResponse, error) {
	var out TeamsResponse
	if err := c.getter.GetJSON(ctx, c.endpoints.Teams(), &out); err != nil {
		return nil, errors.Wrap(err, "fetch teams")
	}
	return &out, nil
}

func (c *Client) Schedule(ctx context.Context, teamID int, season int) (*Schedule, error) {
	var out Schedule
	if err := c.getter.GetJSON(ctx, c.endpoints.Schedule(teamID, season), &out); err != nil {
		return nil, errors.Wrapf(err, "fetch schedule for team %d", teamID)
	}
	return &out, nil
}
