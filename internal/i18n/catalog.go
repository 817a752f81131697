package i18n

var catalogs = map[string]map[string]string{
	"en": {
		"habits.breathing": "Breathing",
		"habits.light":     "Morning light",
		"habits.food":      "Whole foods",
		"habits.sleep":     "Sleep",
		"habits.exercise":  "Exercise",
		"habits.gratitude": "Gratitude",

		"notifications.defaults.morning.title": "Good morning",
		"notifications.defaults.morning.body":  "Start your day with a quick check-in.",
		"notifications.defaults.evening.title": "Evening check-in",
		"notifications.defaults.evening.body":  "How did today go? Log your habits.",
		"notifications.defaults.move.title":    "Time to move",
		"notifications.defaults.move.body":     "Stand up and stretch for a minute.",
	},
	"es": {
		"habits.breathing": "Respiración",
		"habits.light":     "Luz matinal",
		"habits.food":      "Comida natural",
		"habits.sleep":     "Sueño",
		"habits.exercise":  "Ejercicio",
		"habits.gratitude": "Gratitud",

		"notifications.defaults.morning.title": "Buenos días",
		"notifications.defaults.morning.body":  "Empieza el día con un repaso rápido.",
		"notifications.defaults.evening.title": "Repaso nocturno",
		"notifications.defaults.evening.body":  "¿Qué tal fue el día? Registra tus hábitos.",
		"notifications.defaults.move.title":    "Hora de moverse",
		"notifications.defaults.move.body":     "Levántate y estira un minuto.",
	},
	"de": {
		"habits.breathing": "Atmung",
		"habits.light":     "Morgenlicht",
		"habits.food":      "Vollwertkost",
		"habits.sleep":     "Schlaf",
		"habits.exercise":  "Bewegung",
		"habits.gratitude": "Dankbarkeit",

		"notifications.defaults.morning.title": "Guten Morgen",
		"notifications.defaults.morning.body":  "Starte den Tag mit einem kurzen Check-in.",
		"notifications.defaults.evening.title": "Abend-Check-in",
		"notifications.defaults.evening.body":  "Wie war dein Tag? Trag deine Gewohnheiten ein.",
		"notifications.defaults.move.title":    "Zeit für Bewegung",
		"notifications.defaults.move.body":     "Steh auf und streck dich eine Minute.",
	},
}
