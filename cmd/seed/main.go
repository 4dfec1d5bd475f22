package main

import (
	"log"
	"os"

	"gorm.io/gorm"

	"github.com/VictorSilvaVS/enem/internal/config"
	"github.com/VictorSilvaVS/enem/internal/domain/entity"
	"github.com/VictorSilvaVS/enem/pkg/database"
)

// Наполняет базу стартовым каталогом ENEM и демо-пользователями.
// Повторный запуск безопасен: при непустом каталоге сидер ничего не делает.
func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.MigrateDB(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	var subjectCount int64
	if err := db.Model(&entity.Subject{}).Count(&subjectCount).Error; err != nil {
		log.Fatalf("Failed to inspect catalog: %v", err)
	}
	if subjectCount > 0 {
		log.Println("Каталог уже наполнен, пропускаем сидирование.")
		return
	}

	if err := db.Transaction(seed); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("База успешно наполнена стартовыми данными.")
}

func seed(tx *gorm.DB) error {
	// Демо-пользователи: пароли хешируются в хуке BeforeSave
	users := []entity.User{
		{Username: "admin", Email: "admin@enem.com", Password: "admin123", FirstName: "Administrador", LastName: "Sistema", IsActive: true, IsAdmin: true},
		{Username: "teste", Email: "teste@enem.com", Password: "teste123", FirstName: "Usuário", LastName: "Teste", IsActive: true},
	}
	if err := tx.Create(&users).Error; err != nil {
		return err
	}

	subjects := []entity.Subject{
		{Name: "Português", Description: "Língua Portuguesa e Literatura", Area: "Linguagens", Color: "#3498db", Icon: "language", IsActive: true},
		{Name: "Matemática", Description: "Matemática e suas tecnologias", Area: "Matemática", Color: "#27ae60", Icon: "calculator", IsActive: true},
		{Name: "História", Description: "História e suas tecnologias", Area: "Ciências Humanas", Color: "#f39c12", Icon: "landmark", IsActive: true},
		{Name: "Geografia", Description: "Geografia e suas tecnologias", Area: "Ciências Humanas", Color: "#e67e22", Icon: "globe", IsActive: true},
		{Name: "Filosofia", Description: "Filosofia e suas tecnologias", Area: "Ciências Humanas", Color: "#9b59b6", Icon: "brain", IsActive: true},
		{Name: "Sociologia", Description: "Sociologia e suas tecnologias", Area: "Ciências Humanas", Color: "#34495e", Icon: "users", IsActive: true},
		{Name: "Física", Description: "Física e suas tecnologias", Area: "Ciências da Natureza", Color: "#e74c3c", Icon: "atom", IsActive: true},
		{Name: "Química", Description: "Química e suas tecnologias", Area: "Ciências da Natureza", Color: "#1abc9c", Icon: "flask", IsActive: true},
		{Name: "Biologia", Description: "Biologia e suas tecnologias", Area: "Ciências da Natureza", Color: "#2ecc71", Icon: "dna", IsActive: true},
	}
	if err := tx.Create(&subjects).Error; err != nil {
		return err
	}
	bySubject := make(map[string]uint, len(subjects))
	for _, s := range subjects {
		bySubject[s.Name] = s.ID
	}

	topicsBySubject := map[string][]entity.Topic{
		"Português": {
			{Name: "Gramática", Description: "Regras gramaticais e estrutura da língua", DifficultyLevel: 2},
			{Name: "Interpretação de Texto", Description: "Compreensão e análise textual", DifficultyLevel: 3},
			{Name: "Literatura", Description: "Movimentos literários e obras importantes", DifficultyLevel: 3},
			{Name: "Redação", Description: "Técnicas de produção textual", DifficultyLevel: 4},
		},
		"Matemática": {
			{Name: "Álgebra", Description: "Equações, inequações e funções", DifficultyLevel: 3},
			{Name: "Geometria", Description: "Geometria plana e espacial", DifficultyLevel: 3},
			{Name: "Trigonometria", Description: "Funções trigonométricas", DifficultyLevel: 4},
			{Name: "Estatística", Description: "Análise de dados e probabilidade", DifficultyLevel: 2},
		},
		"História": {
			{Name: "História do Brasil", Description: "História brasileira desde a colonização", DifficultyLevel: 3},
			{Name: "História Geral", Description: "História mundial e civilizações", DifficultyLevel: 3},
			{Name: "História Contemporânea", Description: "História recente e atualidades", DifficultyLevel: 2},
		},
		"Geografia": {
			{Name: "Geografia Física", Description: "Clima, relevo e vegetação", DifficultyLevel: 2},
			{Name: "Geografia Humana", Description: "População, urbanização e economia", DifficultyLevel: 3},
			{Name: "Geografia do Brasil", Description: "Características geográficas do Brasil", DifficultyLevel: 2},
		},
		"Física": {
			{Name: "Mecânica", Description: "Movimento, forças e energia", DifficultyLevel: 4},
			{Name: "Termodinâmica", Description: "Calor, temperatura e gases", DifficultyLevel: 3},
			{Name: "Eletricidade", Description: "Circuitos elétricos e magnetismo", DifficultyLevel: 4},
			{Name: "Ondas", Description: "Ondas mecânicas e eletromagnéticas", DifficultyLevel: 3},
		},
		"Química": {
			{Name: "Química Geral", Description: "Estrutura atômica e ligações", DifficultyLevel: 3},
			{Name: "Química Orgânica", Description: "Compostos orgânicos e reações", DifficultyLevel: 4},
		},
		"Biologia": {
			{Name: "Citologia", Description: "Estrutura e função celular", DifficultyLevel: 3},
			{Name: "Genética", Description: "Hereditariedade e evolução", DifficultyLevel: 4},
			{Name: "Ecologia", Description: "Relações ecológicas e meio ambiente", DifficultyLevel: 2},
		},
	}
	topicID := make(map[string]uint)
	for subjectName, topicList := range topicsBySubject {
		for i := range topicList {
			topicList[i].SubjectID = bySubject[subjectName]
			topicList[i].IsActive = true
			topicList[i].EstimatedHours = 2
		}
		if err := tx.Create(&topicList).Error; err != nil {
			return err
		}
		for _, t := range topicList {
			topicID[subjectName+"/"+t.Name] = t.ID
		}
	}

	materials := []entity.StudyMaterial{
		{
			Title:           "Classes Gramaticais",
			Content:         "<h3>Classes Gramaticais</h3><p>As classes gramaticais organizam as palavras de acordo com suas características morfológicas e sintáticas: substantivo, adjetivo, verbo, advérbio, pronome e outras.</p>",
			MaterialType:    "text",
			SubjectID:       bySubject["Português"],
			TopicID:         topicID["Português/Gramática"],
			DifficultyLevel: 2,
			EstimatedTime:   20,
			IsActive:        true,
		},
		{
			Title:           "Equações do 1º Grau",
			Content:         "<h3>Equações do 1º Grau</h3><p>Uma equação do primeiro grau tem a forma ax + b = 0, com a ≠ 0. Exemplo: 3x + 5 = 17, logo x = 4.</p>",
			MaterialType:    "text",
			SubjectID:       bySubject["Matemática"],
			TopicID:         topicID["Matemática/Álgebra"],
			DifficultyLevel: 2,
			EstimatedTime:   25,
			IsActive:        true,
		},
		{
			Title:           "Funções do 2º Grau",
			Content:         "<h3>Funções do 2º Grau</h3><p>Uma função quadrática tem a forma f(x) = ax² + bx + c. O gráfico é uma parábola e as raízes vêm da fórmula de Bhaskara.</p>",
			MaterialType:    "text",
			SubjectID:       bySubject["Matemática"],
			TopicID:         topicID["Matemática/Álgebra"],
			DifficultyLevel: 3,
			EstimatedTime:   30,
			IsActive:        true,
		},
		{
			Title:           "Era Vargas",
			Content:         "<h3>Era Vargas</h3><p>Período da história do Brasil entre 1930 e 1945, marcado pelo governo de Getúlio Vargas e pela industrialização do país.</p>",
			MaterialType:    "text",
			SubjectID:       bySubject["História"],
			TopicID:         topicID["História/História do Brasil"],
			DifficultyLevel: 3,
			EstimatedTime:   25,
			IsActive:        true,
		},
	}
	if err := tx.Create(&materials).Error; err != nil {
		return err
	}

	questions := []entity.Question{
		{
			QuestionText:    "Qual é a solução da equação 3x + 5 = 17?",
			QuestionType:    "multiple_choice",
			DifficultyLevel: 2,
			SubjectID:       bySubject["Matemática"],
			TopicID:         topicID["Matemática/Álgebra"],
			IsActive:        true,
			Answers: []entity.Answer{
				{AnswerText: "x = 3"},
				{AnswerText: "x = 4", IsCorrect: true, Explanation: "3x = 17 - 5 = 12, logo x = 12/3 = 4."},
				{AnswerText: "x = 5"},
				{AnswerText: "x = 6"},
			},
		},
		{
			QuestionText:    "Na função f(x) = x² - 4x + 3, quais são as raízes?",
			QuestionType:    "multiple_choice",
			DifficultyLevel: 3,
			SubjectID:       bySubject["Matemática"],
			TopicID:         topicID["Matemática/Álgebra"],
			IsActive:        true,
			Answers: []entity.Answer{
				{AnswerText: "x = 1 e x = 3", IsCorrect: true, Explanation: "Por Bhaskara: Δ = 16 - 12 = 4, x = (4 ± 2)/2."},
				{AnswerText: "x = -1 e x = -3"},
				{AnswerText: "x = 0 e x = 4"},
				{AnswerText: "x = 2 e x = 2"},
			},
		},
		{
			QuestionText:    "Qual classe gramatical nomeia seres, objetos e sentimentos?",
			QuestionType:    "multiple_choice",
			DifficultyLevel: 1,
			SubjectID:       bySubject["Português"],
			TopicID:         topicID["Português/Gramática"],
			IsActive:        true,
			Answers: []entity.Answer{
				{AnswerText: "Adjetivo"},
				{AnswerText: "Substantivo", IsCorrect: true, Explanation: "O substantivo nomeia seres, objetos, lugares e sentimentos."},
				{AnswerText: "Advérbio"},
				{AnswerText: "Verbo"},
			},
		},
		{
			QuestionText:    "Em que período Getúlio Vargas governou o Brasil pela primeira vez?",
			QuestionType:    "multiple_choice",
			DifficultyLevel: 3,
			SubjectID:       bySubject["História"],
			TopicID:         topicID["História/História do Brasil"],
			IsActive:        true,
			Answers: []entity.Answer{
				{AnswerText: "1920-1935"},
				{AnswerText: "1930-1945", IsCorrect: true, Explanation: "A Era Vargas vai da Revolução de 1930 até a deposição em 1945."},
				{AnswerText: "1945-1960"},
				{AnswerText: "1964-1985"},
			},
		},
	}
	return tx.Create(&questions).Error
}
