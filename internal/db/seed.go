package db

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/salon-booking/internal/domain"
	"github.com/BruksfildServices01/salon-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/salon-booking/internal/domain/messaging"
	"github.com/BruksfildServices01/salon-booking/internal/domain/user"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type SeedRepos struct {
	Users     user.Repository
	Catalog   catalog.Repository
	Templates messaging.Repository
}

type SeedAdmin struct {
	Username string
	Password string
}

// Seed cria os dados iniciais. Só insere o que ainda não existe.
func Seed(ctx context.Context, repos SeedRepos, admin SeedAdmin) error {
	if err := seedAdmin(ctx, repos.Users, admin); err != nil {
		return err
	}
	if err := seedCatalog(ctx, repos.Catalog); err != nil {
		return err
	}
	return seedTemplates(ctx, repos.Templates)
}

func seedAdmin(ctx context.Context, users user.Repository, admin SeedAdmin) error {
	_, err := users.GetUserByUsername(ctx, admin.Username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("seed admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed admin: hash: %w", err)
	}

	return users.CreateUser(ctx, &models.User{
		Username:     admin.Username,
		PasswordHash: string(hash),
		IsAdmin:      true,
	})
}

func seedCatalog(ctx context.Context, repo catalog.Repository) error {
	existing, err := repo.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	manicure := &models.ServiceCategory{Name: "Manicure", Image: "https://images.unsplash.com/photo-1604654894610-df63bc536371"}
	pedicure := &models.ServiceCategory{Name: "Pedicure", Image: "https://images.unsplash.com/photo-1519014816548-bf5fe059798b"}
	for _, cat := range []*models.ServiceCategory{manicure, pedicure} {
		if err := repo.CreateCategory(ctx, cat); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
	}

	services := []*models.Service{
		{CategoryID: manicure.ID, Name: "Gel Simples", Price: 25, Duration: 45},
		{CategoryID: manicure.ID, Name: "Nail Art", Price: 35, Duration: 60},
		{CategoryID: pedicure.ID, Name: "Pedicure Básica", Price: 30, Duration: 50},
	}
	for _, svc := range services {
		if err := repo.CreateService(ctx, svc); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
	}
	return nil
}

var defaultTemplates = []models.MessageTemplate{
	{
		Type:    messaging.TypeConfirmation,
		Subject: "Confirmação de Agendamento",
		Body:    "Olá {client_name}, seu agendamento para {appointment_date} às {appointment_time} foi confirmado. Serviço: {service_name}. Obrigado por escolher nosso salão!",
	},
	{
		Type:    messaging.TypeCancellation,
		Subject: "Cancelamento de Agendamento",
		Body:    "Olá {client_name}, seu agendamento para {appointment_date} às {appointment_time} foi cancelado. Serviço: {service_name}. Entre em contato para reagendar.",
	},
	{
		Type:    messaging.TypeReminder,
		Subject: "Lembrete de Agendamento",
		Body:    "Olá {client_name}, lembramos que amanhã, {appointment_date} às {appointment_time}, você tem {service_name} conosco. Até breve!",
	},
}

func seedTemplates(ctx context.Context, repo messaging.Repository) error {
	for _, tmpl := range defaultTemplates {
		_, err := repo.GetTemplateByType(ctx, tmpl.Type)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("seed templates: %w", err)
		}

		t := tmpl
		if err := repo.CreateTemplate(ctx, &t); err != nil {
			return fmt.Errorf("seed templates: %w", err)
		}
	}
	return nil
}
