package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/foodiesapp/backend/config"
	"github.com/foodiesapp/backend/internal/database"
	"github.com/foodiesapp/backend/internal/models"
	"github.com/foodiesapp/backend/internal/repository"
	"github.com/foodiesapp/backend/internal/sanitize"
)

// Starter meals for a fresh install. Image keys point at objects already
// present in the public bucket.
var seedMeals = []models.Meal{
	{
		Title:        "Juicy Cheese Burger",
		Summary:      "A mouth-watering burger with a juicy beef patty and melted cheese, served in a soft bun.",
		Instructions: "Prepare the patty:\nMix 200g of ground beef with salt and pepper. Form into a flat patty.\n\nCook the patty:\nHeat a pan with a bit of oil. Cook the patty for 2-3 minutes each side, until browned.\n\nAssemble the burger:\nToast the burger bun halves. Place lettuce and tomato on the bottom half. Add the cooked patty and top with a slice of cheese.\n\nServe:\nComplete the assembly with the top bun and serve hot.",
		Creator:      "John Collins",
		CreatorEmail: "johncollins@example.com",
		Image:        "burger.jpg",
	},
	{
		Title:        "Spicy Curry",
		Summary:      "A rich and spicy curry, infused with exotic spices and creamy coconut milk.",
		Instructions: "Chop vegetables:\nCut your choice of vegetables into bite-sized pieces.\n\nSauté vegetables:\nIn a pan with oil, sauté the vegetables until they start to soften.\n\nAdd curry paste:\nStir in 2 tablespoons of curry paste and cook for another minute.\n\nSimmer with coconut milk:\nPour in 500ml of coconut milk and bring to a simmer. Let it cook for about 15 minutes.\n\nServe:\nEnjoy this creamy curry with rice or bread.",
		Creator:      "Max Schwarz",
		CreatorEmail: "max@example.com",
		Image:        "curry.jpg",
	},
	{
		Title:        "Homemade Dumplings",
		Summary:      "Tender dumplings filled with savory meat and vegetables, steamed to perfection.",
		Instructions: "Prepare the filling:\nMix minced meat, shredded vegetables, and spices.\n\nFill the dumplings:\nPlace a spoonful of filling in the center of each dumpling wrapper. Wet the edges and fold to seal.\n\nSteam the dumplings:\nArrange dumplings in a steamer. Steam for about 10 minutes.\n\nServe:\nEnjoy these dumplings hot, with a dipping sauce of your choice.",
		Creator:      "Emily Chen",
		CreatorEmail: "emilychen@example.com",
		Image:        "dumplings.jpg",
	},
	{
		Title:        "Classic Mac n Cheese",
		Summary:      "Creamy and cheesy macaroni, a comforting classic that's always a crowd-pleaser.",
		Instructions: "Cook macaroni:\nBoil macaroni according to package instructions until al dente.\n\nPrepare cheese sauce:\nIn a saucepan, melt butter, add flour, and gradually whisk in milk until thickened. Stir in grated cheese until melted.\n\nCombine:\nMix the cheese sauce with the drained macaroni.\n\nBake:\nTransfer to a baking dish, top with breadcrumbs, and bake until golden.\n\nServe:\nServe hot, garnished with parsley if desired.",
		Creator:      "Laura Smith",
		CreatorEmail: "laurasmith@example.com",
		Image:        "macncheese.jpg",
	},
	{
		Title:        "Authentic Pizza",
		Summary:      "Hand-tossed pizza with a tangy tomato sauce, fresh toppings, and melted cheese.",
		Instructions: "Prepare the dough:\nMix flour, yeast, water, and a pinch of salt. Knead and let rise for 1 hour.\n\nShape and add toppings:\nRoll out the dough, spread tomato sauce, and add your favorite toppings.\n\nBake the pizza:\nBake in a preheated oven at 220°C for about 15-20 minutes.\n\nServe:\nSlice hot and enjoy with fresh basil on top.",
		Creator:      "Mario Rossi",
		CreatorEmail: "mariorossi@example.com",
		Image:        "pizza.jpg",
	},
	{
		Title:        "Wiener Schnitzel",
		Summary:      "Crispy, golden-brown breaded veal cutlet, a classic Austrian dish.",
		Instructions: "Prepare the veal:\nPound veal cutlets to an even thickness.\n\nBread the veal:\nCoat each cutlet in flour, dip in beaten eggs, and then in breadcrumbs.\n\nFry the schnitzel:\nHeat oil in a pan and fry each schnitzel until golden on both sides.\n\nServe:\nServe with a slice of lemon and a side of potato salad or greens.",
		Creator:      "Franz Huber",
		CreatorEmail: "franzhuber@example.com",
		Image:        "schnitzel.jpg",
	},
	{
		Title:        "Fresh Tomato Salad",
		Summary:      "A light and refreshing salad with ripe tomatoes, fresh basil, and a balsamic glaze.",
		Instructions: "Prepare the tomatoes:\nSlice fresh tomatoes and arrange them on a plate.\n\nAdd herbs and seasoning:\nSprinkle chopped basil, salt, and pepper over the tomatoes.\n\nDress the salad:\nDrizzle with olive oil and balsamic glaze.\n\nServe:\nEnjoy this simple, flavorful salad as a side dish or light meal.",
		Creator:      "Sophia Green",
		CreatorEmail: "sophiagreen@example.com",
		Image:        "tomato-salad.jpg",
	},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, relying on environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewGormDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to record store: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	repo := repository.NewGormMealRepository(db)
	ctx := context.Background()

	seeded := 0
	for i := range seedMeals {
		meal := seedMeals[i]
		meal.Slug = sanitize.Slug(meal.Title)
		meal.Instructions = sanitize.HTML(meal.Instructions)

		existing, err := repo.GetBySlug(ctx, meal.Slug)
		if err != nil {
			log.Fatalf("Failed to check for existing meal %s: %v", meal.Slug, err)
		}
		if existing != nil {
			log.Printf("Skipping %s (already seeded)", meal.Slug)
			continue
		}

		if err := repo.Insert(ctx, &meal); err != nil {
			log.Fatalf("Failed to seed meal %s: %v", meal.Slug, err)
		}
		seeded++
	}

	log.Printf("Seeded %d meals", seeded)
}
