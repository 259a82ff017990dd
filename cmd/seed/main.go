// cmd/seed/main.go — Peuple la base avec un pharmacien, des groupes, des
// fournisseurs, des clients et des médicaments de démonstration.
// Usage: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/layebamba/Fadj-MA/internal/config"
	"github.com/layebamba/Fadj-MA/internal/infra"
	"github.com/layebamba/Fadj-MA/internal/model"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}

	ctx := context.Background()
	fmt.Println("Peuplement de la base de données...")

	user := seedPharmacist(ctx, db)
	groups := seedGroups(ctx, db)
	suppliers := seedSuppliers(ctx, db)
	clientCount := seedClients(ctx, db)
	medicineCount := seedMedicines(ctx, db, cfg, user, groups, suppliers)

	fmt.Println("\nPeuplement terminé!")
	fmt.Printf("   - %d groupes\n", len(groups))
	fmt.Printf("   - %d fournisseurs\n", len(suppliers))
	fmt.Printf("   - %d clients\n", clientCount)
	fmt.Printf("   - %d médicaments\n", medicineCount)
}

func seedPharmacist(ctx context.Context, db *gorm.DB) *model.User {
	var user model.User
	err := db.WithContext(ctx).Where("role = ?", "pharmacist").First(&user).Error
	if err == nil {
		return &user
	}

	fmt.Println("Aucun pharmacien trouvé, création d'un pharmacien par défaut...")
	hash, err := bcrypt.GenerateFromPassword([]byte("Passer123!"), 12)
	if err != nil {
		log.Fatalf("bcrypt error: %v", err)
	}
	user = model.User{
		Email:        "pharmacien@fadjma.sn",
		PasswordHash: string(hash),
		FirstName:    "Modou",
		LastName:     "Fall",
		Role:         "pharmacist",
		IsActive:     true,
	}
	if err := db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).
		Create(&user).Error; err != nil {
		log.Fatalf("create pharmacist: %v", err)
	}
	fmt.Printf("Utilisateur créé: %s\n", user.Email)
	return &user
}

func seedGroups(ctx context.Context, db *gorm.DB) []model.MedicineGroup {
	data := []model.MedicineGroup{
		{Name: "Antibiotiques", Description: "Médicaments pour traiter les infections bactériennes"},
		{Name: "Antalgiques", Description: "Médicaments contre la douleur"},
		{Name: "Antipaludéens", Description: "Médicaments pour le traitement du paludisme"},
		{Name: "Antidiabétiques", Description: "Médicaments pour le contrôle du diabète"},
		{Name: "Vitamines et Compléments", Description: "Suppléments vitaminiques"},
		{Name: "Médicaments cardiovasculaires", Description: "Médicaments pour le cœur"},
	}

	fmt.Println("\n1. Création des groupes...")
	groups := make([]model.MedicineGroup, 0, len(data))
	for _, g := range data {
		var group model.MedicineGroup
		err := db.WithContext(ctx).Where("name = ?", g.Name).
			Attrs(model.MedicineGroup{Description: g.Description}).
			FirstOrCreate(&group, model.MedicineGroup{Name: g.Name}).Error
		if err != nil {
			log.Fatalf("group %s: %v", g.Name, err)
		}
		groups = append(groups, group)
		fmt.Printf("  - %s\n", group.Name)
	}
	return groups
}

func seedSuppliers(ctx context.Context, db *gorm.DB) []model.Supplier {
	data := []model.Supplier{
		{Name: "Laboratoires Afrique Pharma", Phone: "338234567", Email: "contact@afriquepharma.sn", Address: "Zone industrielle, Rufisque"},
		{Name: "Sodipharm Sénégal", Phone: "771456789", Email: "info@sodipharm.sn", Address: "Route de Ouakam, Dakar"},
		{Name: "Distrimed International", Phone: "775123456", Email: "ventes@distrimed.sn", Address: "Boulevard du Centenaire, Dakar"},
		{Name: "Copharmed Distribution", Phone: "338567890", Email: "commandes@copharmed.sn", Address: "Liberté 6, Dakar"},
		{Name: "Pharm'Access Sénégal", Phone: "772345678", Email: "contact@pharmaccess.sn", Address: "Point E, Dakar"},
	}

	fmt.Println("\n2. Création des fournisseurs...")
	suppliers := make([]model.Supplier, 0, len(data))
	for _, s := range data {
		var supplier model.Supplier
		err := db.WithContext(ctx).Where("name = ?", s.Name).
			Attrs(s).
			FirstOrCreate(&supplier, model.Supplier{Name: s.Name}).Error
		if err != nil {
			log.Fatalf("supplier %s: %v", s.Name, err)
		}
		suppliers = append(suppliers, supplier)
		fmt.Printf("  - %s\n", supplier.Name)
	}
	return suppliers
}

func seedClients(ctx context.Context, db *gorm.DB) int {
	d := func(y int, m time.Month, day int) *time.Time {
		t := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
		return &t
	}
	data := []model.Client{
		{FirstName: "Moussa", LastName: "Ndiaye", Gender: "M", BirthDate: d(1985, 3, 20), Phone: "776543210", Email: "moussa.ndiaye@email.sn", Address: "Plateau, Dakar"},
		{FirstName: "Fatou", LastName: "Sall", Gender: "F", BirthDate: d(1992, 7, 10), Phone: "775432109", Email: "fatou.sall@gmail.com", Address: "Ouakam, Dakar"},
		{FirstName: "Ibrahima", LastName: "Diop", Gender: "M", BirthDate: d(1978, 11, 30), Phone: "773210987", Email: "idiop@yahoo.fr", Address: "Grand Yoff, Dakar"},
		{FirstName: "Awa", LastName: "Ba", Gender: "F", BirthDate: d(1995, 1, 25), Phone: "778765432", Email: "awa.ba@outlook.com", Address: "Sacré Coeur, Dakar"},
		{FirstName: "Cheikh", LastName: "Sy", Gender: "M", BirthDate: d(1988, 9, 15), Phone: "774567890", Email: "cheikh.sy@hotmail.com", Address: "Mermoz, Dakar"},
		{FirstName: "Mariama", LastName: "Kane", Gender: "F", BirthDate: d(1980, 12, 5), Phone: "779876543", Email: "mariama.kane@gmail.com", Address: "HLM, Dakar"},
	}

	fmt.Println("\n3. Création des clients...")
	for _, c := range data {
		var client model.Client
		err := db.WithContext(ctx).Where("phone = ?", c.Phone).
			Attrs(c).
			FirstOrCreate(&client, model.Client{Phone: c.Phone}).Error
		if err != nil {
			log.Fatalf("client %s: %v", c.Phone, err)
		}
		fmt.Printf("  - %s %s\n", client.FirstName, client.LastName)
	}
	return len(data)
}

func seedMedicines(ctx context.Context, db *gorm.DB, cfg *config.Config, user *model.User, groups []model.MedicineGroup, suppliers []model.Supplier) int {
	d := func(y int, m time.Month, day int) *time.Time {
		t := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
		return &t
	}
	price := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }

	data := []model.Medicine{
		{
			Name: "Paracétamol 500mg", MedicineID: "MED-2024-001", GroupID: &groups[1].ID, SupplierID: &suppliers[0].ID,
			StockQuantity: 250, MinStockAlert: 50, Composition: "Paracétamol", Manufacturer: "Sanofi Sénégal",
			ConsumptionType: "oral", PharmaceuticalForm: "comprime", ExpirationDate: d(2026, 6, 30),
			Description:       "Antalgique et antipyrétique pour douleurs légères à modérées et fièvre.",
			DosageInfo:        "1 à 2 comprimés toutes les 4-6 heures, maximum 8 par jour",
			ActiveIngredients: "Paracétamol 500mg",
			SideEffects:       "Rares : réactions allergiques, atteintes hépatiques à forte dose",
			PurchasePrice:     price("500"), SellingPrice: price("750"),
		},
		{
			Name: "Coartem 20/120mg", MedicineID: "MED-2024-002", GroupID: &groups[2].ID, SupplierID: &suppliers[1].ID,
			StockQuantity: 150, MinStockAlert: 30, Composition: "Artéméther + Luméfantrine", Manufacturer: "Novartis",
			ConsumptionType: "oral", PharmaceuticalForm: "comprime", ExpirationDate: d(2026, 9, 15),
			Description:       "Association thérapeutique recommandée par l'OMS contre les formes simples de paludisme.",
			DosageInfo:        "4 comprimés 2 fois par jour pendant 3 jours",
			ActiveIngredients: "Artéméther 20mg, Luméfantrine 120mg",
			SideEffects:       "Maux de tête, vertiges, nausées, douleurs musculaires",
			PurchasePrice:     price("3500"), SellingPrice: price("5000"),
		},
		{
			Name: "Amoxicilline 1g", MedicineID: "MED-2024-003", GroupID: &groups[0].ID, SupplierID: &suppliers[0].ID,
			StockQuantity: 200, MinStockAlert: 40, Composition: "Amoxicilline trihydrate", Manufacturer: "Laboratoires Afrique Pharma",
			ConsumptionType: "oral", PharmaceuticalForm: "comprime", ExpirationDate: d(2026, 12, 31),
			Description:       "Antibiotique à large spectre pour infections ORL, respiratoires, urinaires et cutanées.",
			DosageInfo:        "1g 2 à 3 fois par jour pendant 7 à 10 jours",
			ActiveIngredients: "Amoxicilline 1g",
			SideEffects:       "Diarrhée, nausées, éruptions cutanées",
			PurchasePrice:     price("2000"), SellingPrice: price("3000"),
		},
		{
			Name: "Metformine 850mg", MedicineID: "MED-2024-004", GroupID: &groups[3].ID, SupplierID: &suppliers[2].ID,
			StockQuantity: 180, MinStockAlert: 35, Composition: "Chlorhydrate de metformine", Manufacturer: "Sanofi",
			ConsumptionType: "oral", PharmaceuticalForm: "comprime", ExpirationDate: d(2027, 3, 20),
			Description:       "Traitement de première intention du diabète de type 2.",
			DosageInfo:        "1 comprimé 2 à 3 fois par jour pendant les repas",
			ActiveIngredients: "Metformine 850mg",
			SideEffects:       "Troubles digestifs, diarrhée, nausées",
			PurchasePrice:     price("1500"), SellingPrice: price("2200"),
		},
		{
			Name: "Vitamine C 1000mg", MedicineID: "MED-2024-005", GroupID: &groups[4].ID, SupplierID: &suppliers[3].ID,
			StockQuantity: 300, MinStockAlert: 60, Composition: "Acide ascorbique", Manufacturer: "Bayer",
			ConsumptionType: "oral", PharmaceuticalForm: "comprime", ExpirationDate: d(2026, 11, 30),
			Description:       "Complément essentiel pour le système immunitaire, recommandé en période de fatigue.",
			DosageInfo:        "1 comprimé effervescent par jour",
			ActiveIngredients: "Acide ascorbique 1000mg",
			SideEffects:       "Troubles digestifs à forte dose",
			PurchasePrice:     price("800"), SellingPrice: price("1200"),
		},
		{
			Name: "Amlodipine 5mg", MedicineID: "MED-2024-006", GroupID: &groups[5].ID, SupplierID: &suppliers[1].ID,
			StockQuantity: 120, MinStockAlert: 25, Composition: "Bésilate d'amlodipine", Manufacturer: "Pfizer",
			ConsumptionType: "oral", PharmaceuticalForm: "comprime", ExpirationDate: d(2027, 1, 15),
			Description:       "Antihypertenseur qui réduit les risques cardiovasculaires.",
			DosageInfo:        "1 comprimé par jour, de préférence le matin",
			ActiveIngredients: "Amlodipine 5mg",
			SideEffects:       "Œdèmes des chevilles, bouffées de chaleur",
			PurchasePrice:     price("2500"), SellingPrice: price("3500"),
		},
		{
			Name: "Augmentin 1g", MedicineID: "MED-2024-007", GroupID: &groups[0].ID, SupplierID: &suppliers[4].ID,
			StockQuantity: 90, MinStockAlert: 20, Composition: "Amoxicilline + Acide clavulanique", Manufacturer: "GSK",
			ConsumptionType: "oral", PharmaceuticalForm: "comprime", ExpirationDate: d(2026, 8, 20),
			Description:       "Antibiotique renforcé efficace contre les bactéries résistantes.",
			DosageInfo:        "1 comprimé 2 à 3 fois par jour pendant 7 jours",
			ActiveIngredients: "Amoxicilline 875mg, Acide clavulanique 125mg",
			SideEffects:       "Diarrhée, nausées, éruptions cutanées",
			PurchasePrice:     price("4000"), SellingPrice: price("5500"),
		},
		{
			Name: "Bronchodex Sirop", MedicineID: "MED-2024-008", GroupID: &groups[1].ID, SupplierID: &suppliers[0].ID,
			StockQuantity: 75, MinStockAlert: 15, Composition: "Dextrométhorphane + Guaifénésine", Manufacturer: "Laboratoires Afrique Pharma",
			ConsumptionType: "oral", PharmaceuticalForm: "sirop", ExpirationDate: d(2026, 5, 30),
			Description:       "Sirop antitussif et expectorant pour infections respiratoires avec toux.",
			DosageInfo:        "10ml 3 fois par jour",
			ActiveIngredients: "Dextrométhorphane 15mg/5ml, Guaifénésine 100mg/5ml",
			SideEffects:       "Somnolence, nausées, vertiges",
			PurchasePrice:     price("3000"), SellingPrice: price("4200"),
		},
	}

	fmt.Println("\n4. Création des médicaments avec images...")
	created := 0
	for i := range data {
		m := data[i]
		m.CreatedByID = &user.ID

		var existing model.Medicine
		err := db.WithContext(ctx).Where("medicine_id = ?", m.MedicineID).First(&existing).Error
		if err == nil {
			fmt.Printf("  - %s (existant)\n", existing.Name)
			continue
		}

		// Image placeholder — best effort, le médicament est créé même sans image
		if path, err := downloadPlaceholderImage(cfg.MediaStoragePath, i+1); err != nil {
			fmt.Printf("  ! image %s: %v\n", m.Name, err)
		} else {
			m.ImagePath = &path
		}

		if err := db.WithContext(ctx).Create(&m).Error; err != nil {
			log.Fatalf("medicine %s: %v", m.Name, err)
		}
		fmt.Printf("  - %s\n", m.Name)
		created++
	}
	return created
}

func downloadPlaceholderImage(dir string, seed int) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(fmt.Sprintf("https://picsum.photos/400/400?random=%d", seed))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}

	path := filepath.Join(dir, fmt.Sprintf("medicine_%d.jpg", seed))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, resp.Body); err != nil {
		return "", err
	}
	return path, nil
}
