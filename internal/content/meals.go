package content

// Recipe is a single meal suggestion.
type Recipe struct {
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients"`
	Calories    int      `json:"calories"`
	PrepTime    string   `json:"prep_time"`
}

// MealPlan holds three suggestions for each of the four daily meal slots.
// The plan is constant across all callers and is not personalized.
type MealPlan struct {
	Breakfast []Recipe `json:"breakfast"`
	Lunch     []Recipe `json:"lunch"`
	Dinner    []Recipe `json:"dinner"`
	Snack     []Recipe `json:"snack"`
}

var mealPlan = MealPlan{
	Breakfast: []Recipe{
		{
			Name:        "Vegetable Omelette",
			Ingredients: []string{"2 eggs", "Spinach", "Tomato", "Onion", "Bell pepper"},
			Calories:    250,
			PrepTime:    "10 min",
		},
		{
			Name:        "Oatmeal with Fruit",
			Ingredients: []string{"50g oats", "1 banana", "Strawberries", "1 tbsp honey", "Cinnamon"},
			Calories:    300,
			PrepTime:    "5 min",
		},
		{
			Name:        "Plain Yogurt with Granola",
			Ingredients: []string{"200g plain yogurt", "30g granola", "Mixed berries", "Chia seeds"},
			Calories:    280,
			PrepTime:    "3 min",
		},
	},
	Lunch: []Recipe{
		{
			Name:        "Grilled Chicken with Vegetables",
			Ingredients: []string{"150g chicken breast", "Broccoli", "Carrots", "Brown rice", "Olive oil"},
			Calories:    450,
			PrepTime:    "25 min",
		},
		{
			Name:        "Baked Fish with Salad",
			Ingredients: []string{"150g white fish fillet", "Lettuce", "Tomato", "Cucumber", "Sweet potato"},
			Calories:    400,
			PrepTime:    "30 min",
		},
		{
			Name:        "Quinoa Salad",
			Ingredients: []string{"100g quinoa", "Chickpeas", "Avocado", "Leafy greens", "Lemon"},
			Calories:    420,
			PrepTime:    "20 min",
		},
	},
	Dinner: []Recipe{
		{
			Name:        "Vegetable Soup",
			Ingredients: []string{"Carrot", "Zucchini", "Potato", "Onion", "Garlic"},
			Calories:    200,
			PrepTime:    "30 min",
		},
		{
			Name:        "Light Omelette",
			Ingredients: []string{"3 egg whites", "1 yolk", "Mushrooms", "Cottage cheese", "Tomato"},
			Calories:    220,
			PrepTime:    "10 min",
		},
		{
			Name:        "Caesar Salad with Chicken",
			Ingredients: []string{"100g grilled chicken", "Romaine lettuce", "Parmesan", "Light dressing"},
			Calories:    350,
			PrepTime:    "15 min",
		},
	},
	Snack: []Recipe{
		{
			Name:        "Mixed Nuts",
			Ingredients: []string{"Almonds", "Cashews", "Walnuts"},
			Calories:    150,
			PrepTime:    "0 min",
		},
		{
			Name:        "Apple with Peanut Butter",
			Ingredients: []string{"1 apple", "1 tbsp peanut butter"},
			Calories:    180,
			PrepTime:    "2 min",
		},
		{
			Name:        "Green Smoothie",
			Ingredients: []string{"Spinach", "Banana", "Pineapple", "Coconut water"},
			Calories:    160,
			PrepTime:    "5 min",
		},
	},
}

// Meals returns the fixed meal plan.
func Meals() MealPlan {
	return mealPlan
}
