package seeder

import (
	"context"
	"time"

	"venturehive/internal/database"
	"venturehive/internal/domain/matching"
	"venturehive/internal/domain/project"
	"venturehive/internal/domain/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// demoPassword is shared by all seeded accounts. Demo environments only.
const demoPassword = "venturehive-demo"

type demoFounder struct {
	email    string
	fullName string
	projects []project.Project
}

type demoInvestor struct {
	email    string
	fullName string
	profile  matching.InvestorProfile
}

// DemoSeeder loads a small two-sided dataset so a fresh environment has
// something to browse, score and rank. Inserts are keyed on email and title,
// so re-running it is harmless.
type DemoSeeder struct {
	db     database.DB
	logger *zap.Logger
}

func NewDemoSeeder(db database.DB, logger *zap.Logger) *DemoSeeder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DemoSeeder{db: db, logger: logger}
}

func (s *DemoSeeder) Run(ctx context.Context) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	for _, f := range demoFounders() {
		founderID, err := s.ensureUser(ctx, f.email, f.fullName, user.RoleFounder, string(hash))
		if err != nil {
			return err
		}
		for _, p := range f.projects {
			if err := s.ensureProject(ctx, founderID, p); err != nil {
				return err
			}
		}
	}

	for _, inv := range demoInvestors() {
		investorID, err := s.ensureUser(ctx, inv.email, inv.fullName, user.RoleInvestor, string(hash))
		if err != nil {
			return err
		}
		if err := s.ensureInvestorProfile(ctx, investorID, inv.profile); err != nil {
			return err
		}
	}

	s.logger.Info("demo data seeded")
	return nil
}

func (s *DemoSeeder) ensureUser(ctx context.Context, email, fullName, role, hash string) (uuid.UUID, error) {
	now := time.Now().UTC()
	_, err := s.db.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, full_name, role, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$6)
		 ON CONFLICT (email) DO NOTHING`,
		uuid.New(), email, hash, fullName, role, now,
	)
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	if err := s.db.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, email).Scan(&id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (s *DemoSeeder) ensureProject(ctx context.Context, founderID uuid.UUID, p project.Project) error {
	var exists bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM projects WHERE founder_id = $1 AND title = $2)`,
		founderID, p.Title).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	now := time.Now().UTC()
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	_, err = s.db.Exec(ctx,
		`INSERT INTO projects
			(id, founder_id, title, pitch, sector, stage, location, funding_amount, funding_type,
			 esg_impact, tags, status, website_url, traction_users, revenue, growth_percent,
			 team_size, team_notes, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$19)`,
		uuid.New(), founderID, p.Title, p.Pitch, p.Sector, p.Stage, p.Location,
		p.FundingAmount, p.FundingType, p.ESGImpact, tags, project.StatusPublished,
		p.WebsiteURL, p.TractionUsers, p.Revenue, p.GrowthPercent, p.TeamSize, p.TeamNotes, now,
	)
	return err
}

func (s *DemoSeeder) ensureInvestorProfile(ctx context.Context, investorID uuid.UUID, p matching.InvestorProfile) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO investor_profiles
			(user_id, preferred_sectors, investment_stages, preferred_locations,
			 ticket_size_min, ticket_size_max, funding_models, esg_focus, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		 ON CONFLICT (user_id) DO NOTHING`,
		investorID, p.PreferredSectors, p.InvestmentStages, p.PreferredLocations,
		p.TicketSizeMin, p.TicketSizeMax, p.FundingModels, p.ESGFocus, time.Now().UTC(),
	)
	return err
}

func demoFounders() []demoFounder {
	return []demoFounder{
		{
			email:    "ada@ledgerly.africa",
			fullName: "Ada Okafor",
			projects: []project.Project{
				{
					Title:         "Ledgerly",
					Pitch:         "Digital bookkeeping and payments for open-air market traders.",
					Sector:        "fintech",
					Stage:         "seed",
					Location:      "Lagos",
					FundingAmount: 250000,
					FundingType:   "equity",
					ESGImpact:     matching.ESGHigh,
					Tags:          []string{"payments", "sme"},
					TractionUsers: 4200,
					Revenue:       85000,
					GrowthPercent: 22,
					TeamSize:      6,
					TeamNotes:     "Second-time founders, ex payments infrastructure.",
				},
			},
		},
		{
			email:    "kofi@solargrid.africa",
			fullName: "Kofi Mensah",
			projects: []project.Project{
				{
					Title:         "SolarGrid",
					Pitch:         "Pay-as-you-go solar micro-grids for off-grid communities.",
					Sector:        "cleantech",
					Stage:         "series_a",
					Location:      "Accra",
					FundingAmount: 1500000,
					FundingType:   "convertible_note",
					ESGImpact:     matching.ESGHigh,
					Tags:          []string{"energy", "climate"},
					TractionUsers: 18000,
					Revenue:       420000,
					GrowthPercent: 35,
					TeamSize:      14,
					TeamNotes:     "Hardware plus software team with two deployed pilot grids.",
				},
			},
		},
	}
}

func demoInvestors() []demoInvestor {
	return []demoInvestor{
		{
			email:    "zhara@impactbridge.vc",
			fullName: "Zhara Diallo",
			profile: matching.InvestorProfile{
				PreferredSectors:   []string{"fintech", "cleantech"},
				InvestmentStages:   []string{"seed", "series_a"},
				PreferredLocations: []string{"Lagos", "Accra", "Nairobi"},
				TicketSizeMin:      100000,
				TicketSizeMax:      2000000,
				FundingModels:      []string{"equity", "convertible_note"},
				ESGFocus:           true,
			},
		},
		{
			email:    "marcus@latitudecap.com",
			fullName: "Marcus Webb",
			profile: matching.InvestorProfile{
				PreferredSectors:   []string{"saas", "fintech"},
				InvestmentStages:   []string{"pre_seed", "seed"},
				PreferredLocations: []string{"London", "Lagos"},
				TicketSizeMin:      25000,
				TicketSizeMax:      500000,
				FundingModels:      []string{"equity"},
				ESGFocus:           false,
			},
		},
	}
}
