package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/carebridge/careworker-go/internal/config"
	"github.com/carebridge/careworker-go/internal/config/db"
	"github.com/carebridge/careworker-go/internal/domain/template"
	"github.com/carebridge/careworker-go/internal/domain/user"
	"github.com/carebridge/careworker-go/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v2"
	"gorm.io/gorm"
)

type seedField struct {
	Name     string `yaml:"name" json:"name"`
	Label    string `yaml:"label" json:"label,omitempty"`
	Type     string `yaml:"type" json:"type,omitempty"`
	Required bool   `yaml:"required" json:"required,omitempty"`
}

type seedTemplate struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Type        string      `yaml:"type"`
	Category    string      `yaml:"category"`
	Fields      []seedField `yaml:"fields"`
}

type seedWorker struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Phone    string `yaml:"phone"`
}

type seedFile struct {
	Admin struct {
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
	} `yaml:"admin"`
	Templates   []seedTemplate `yaml:"templates"`
	CareWorkers []seedWorker   `yaml:"care_workers"`
}

// seed loads a YAML file and inserts the admin account, starter form
// templates and optional care workers. Existing rows are left alone, so
// running it repeatedly is safe.
func main() {
	path := flag.String("file", "seed.yaml", "path to the seed YAML file")
	flag.Parse()

	raw, err := os.ReadFile(*path)
	if err != nil {
		log.Fatalf("could not read seed file: %v", err)
	}
	var seed seedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		log.Fatalf("could not parse seed file: %v", err)
	}

	config.LoadConfig()
	db.Init()
	repos := repository.NewRepositories(db.DB)

	if seed.Admin.Email != "" {
		seedAdmin(repos, seed.Admin.Email, seed.Admin.Password)
	}
	for _, t := range seed.Templates {
		seedOneTemplate(repos, t)
	}
	for _, w := range seed.CareWorkers {
		seedOneWorker(repos, w)
	}
	log.Println("Seeding finished")
}

func seedAdmin(repos *repository.Repos, email, password string) {
	if _, err := repos.User.GetUserByEmail(email); err == nil {
		log.Printf("admin %s already exists, skipping", email)
		return
	} else if err != gorm.ErrRecordNotFound {
		log.Fatalf("admin lookup failed: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("could not hash admin password: %v", err)
	}
	admin := user.User{
		Email:    email,
		Password: string(hashed),
		Role:     user.RoleAdmin,
		Status:   user.StatusActive,
	}
	if err := repos.User.SaveUser(&admin); err != nil {
		log.Fatalf("could not create admin: %v", err)
	}
	log.Printf("created admin %s", email)
}

func seedOneTemplate(repos *repository.Repos, t seedTemplate) {
	existing, err := repos.Template.List(template.Category(categoryOrDefault(t.Category)), false, template.ListTemplatesQuery{Search: t.Name})
	if err != nil {
		log.Fatalf("template lookup failed: %v", err)
	}
	for _, e := range existing {
		if e.Name == t.Name {
			log.Printf("template %q already exists, skipping", t.Name)
			return
		}
	}

	schema := map[string]interface{}{"fields": t.Fields}
	raw, err := json.Marshal(schema)
	if err != nil {
		log.Fatalf("could not encode schema for %q: %v", t.Name, err)
	}

	tpl := template.FormTemplate{
		Name:         t.Name,
		Type:         typeOrDefault(t.Type),
		Version:      "1.0",
		FormData:     raw,
		IsActive:     true,
		FormCategory: template.Category(categoryOrDefault(t.Category)),
	}
	if t.Description != "" {
		tpl.Description = &t.Description
	}
	if err := repos.Template.Create(&tpl); err != nil {
		log.Fatalf("could not create template %q: %v", t.Name, err)
	}
	log.Printf("created template %q with %d fields", t.Name, len(t.Fields))
}

func seedOneWorker(repos *repository.Repos, w seedWorker) {
	if _, err := repos.User.GetUserByEmail(w.Email); err == nil {
		log.Printf("care worker %s already exists, skipping", w.Email)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(w.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("could not hash password for %s: %v", w.Email, err)
	}
	usr := user.User{
		Email:    w.Email,
		Password: string(hashed),
		Role:     user.RoleCareWorker,
		Status:   user.StatusActive,
	}
	if err := repos.User.SaveUser(&usr); err != nil {
		log.Fatalf("could not create care worker %s: %v", w.Email, err)
	}
	profile := user.CareWorkerProfile{UserID: usr.ID, Name: w.Name}
	if w.Phone != "" {
		profile.Phone = &w.Phone
	}
	if err := repos.User.SaveProfile(&profile); err != nil {
		log.Fatalf("could not create profile for %s: %v", w.Email, err)
	}
	log.Printf("created care worker %s", w.Email)
}

func categoryOrDefault(c string) string {
	if c == "" {
		return "template"
	}
	return c
}

func typeOrDefault(t string) string {
	if t == "" {
		return "Input"
	}
	return t
}
