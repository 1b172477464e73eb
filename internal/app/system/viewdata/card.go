package viewdata

import (
	"net/url"

	"github.com/dalemusser/technavigator/internal/domain/models"
)

// DomainCard is the view model for the shared "domain_card" partial.
type DomainCard struct {
	ID                    string
	Name                  string
	ShortDescription      string
	EstimatedLearningTime string
	HasHours              bool
	HoursText             string
	Subtopics             []string
	Href                  string
}

// NewDomainCard builds a card for d. When returnTo is set the card link
// carries it so the detail page can send the visitor back.
func NewDomainCard(d models.DomainRecord, returnTo string) DomainCard {
	href := "/domains/" + url.PathEscape(d.ID)
	if returnTo != "" {
		href += "?return=" + url.QueryEscape(returnTo)
	}
	card := DomainCard{
		ID:                    d.ID,
		Name:                  d.Name,
		ShortDescription:      d.ShortDescription,
		EstimatedLearningTime: d.EstimatedLearningTime,
		HasHours:              d.HasHours(),
		Subtopics:             d.KeySubtopics,
		Href:                  href,
	}
	if card.HasHours {
		card.HoursText = Hours(d.Hours())
	}
	return card
}

// NewDomainCards builds cards for recs in order.
func NewDomainCards(recs []models.DomainRecord, returnTo string) []DomainCard {
	out := make([]DomainCard, 0, len(recs))
	for _, d := range recs {
		out = append(out, NewDomainCard(d, returnTo))
	}
	return out
}
