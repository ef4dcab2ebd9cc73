package importer

import (
	"fmt"

	"github.com/ainara-edu/teksplan/internal/domain"
)

// ExampleJSON is the built-in seed document, useful as a starting point
// and as living documentation of the wire format.
const ExampleJSON = `{
  "title": "Exploring Our Cosmic Neighborhood: A 3-Day Solar System Unit",
  "description": "This three-day unit for high school astronomy/science focuses on the structure, scale, and composition of the solar system. Students will move from understanding the vast distances and relative sizes of celestial bodies to comparing the specific characteristics of planets and investigating the significance of smaller solar system objects like asteroids and comets. The unit emphasizes modeling, comparative analysis, and communicating scientific findings.",
  "subject": "Science",
  "overarching_goals_standards": [
    "112.48.c.7.C",
    "112.48.c.11.B",
    "112.48.c.11.C"
  ],
  "activities": [
    {
      "title": "Scaling the Void: A Solar System Walk",
      "timeframe": "One class period (45-60 minutes)",
      "student_will_statement": "Students will calculate scale distances for planetary orbits and construct a physical model to demonstrate the relative sizes and distances of the Sun and planets, identifying the limitations of physical models.",
      "assignment_description": "Students will work in small groups to perform calculations converting astronomical units (AU) into a walkable scale (e.g., 1 AU = 1 meter or 1 AU = 10 steps). Using a central object to represent the Sun, groups will place markers for each planet at the calculated distances in a hallway or outdoor space. Afterward, they will complete a reflection sheet analyzing the vastness of space compared to the size of the planets themselves, and discuss why creating a model that is to scale for both size and distance simultaneously is difficult.",
      "evaluation_criteria": {
        "score_4_proficient": "Calculations for scale distances are 100% accurate. The physical model is laid out correctly. The student provides a deep analysis of the limitations of the model (e.g., inability to scale size and distance simultaneously in a small space).",
        "score_3_developing": "Calculations are mostly accurate with minor errors. The model is laid out with reasonable accuracy. The reflection identifies limitations but lacks depth or specific examples.",
        "score_2_beginning": "Calculations contain significant errors leading to an inaccurate model layout. The reflection is incomplete or demonstrates a misunderstanding of the concept of scale.",
        "score_1_not_yet": "Calculations are missing or wholly incorrect. No model is constructed or the student does not participate in the layout process.",
        "score_0_no_participation": "Student submits no work and refuses to participate in the group activity."
      },
      "activity_standards": [
        "112.48.c.7.C",
        "112.48.c.2.A"
      ]
    },
    {
      "title": "Planetary Comparative Analysis",
      "timeframe": "One class period (45-60 minutes)",
      "student_will_statement": "Students will compare and contrast the planets in terms of orbit, size, composition, rotation, atmosphere, natural satellites, magnetic fields, and geological activity.",
      "assignment_description": "Students will be assigned a specific planetary group (Terrestrial or Jovian) or specific pairs of planets to research. They must create a 'Planetary Data Sheet' or infographic that compares their assigned planets against Earth. The analysis must include data on composition, atmosphere, magnetic fields, and geological activity. Finally, students will write a summary paragraph explaining how distance from the Sun influences the physical properties of the planets (e.g., temperature, state of matter, atmosphere retention).",
      "evaluation_criteria": {
        "score_4_proficient": "The data sheet is comprehensive, visually organized, and accurate. The summary paragraph clearly articulates the relationship between solar distance and planetary properties with specific evidence.",
        "score_3_developing": "The data sheet contains most required information but may miss details on magnetic fields or geological activity. The summary explains the relationship generally but lacks specific evidence.",
        "score_2_beginning": "The data sheet is incomplete or contains factual errors. The summary fails to connect the physical properties to the distance from the Sun.",
        "score_1_not_yet": "The assignment is fragmentary with minimal data. No summary is provided.",
        "score_0_no_participation": "Student submits blank work."
      },
      "activity_standards": [
        "112.48.c.11.C"
      ]
    },
    {
      "title": "Small Bodies, Big Significance",
      "timeframe": "One class period (45-60 minutes)",
      "student_will_statement": "Students will explore and communicate the origins and significance of planets, planetary rings, satellites, asteroids, comets, Oort cloud, and Kuiper belt objects.",
      "assignment_description": "Students will conduct a 'jigsaw' research activity where different groups investigate specific non-planetary bodies: Asteroids, Comets, Kuiper Belt Objects, and the Oort Cloud. Groups will create a 3-minute presentation or a digital poster explaining what these objects are made of, where they are located, and what they tell us about the formation of the solar system. The class will conclude with a discussion on the difference between these objects and major planets.",
      "evaluation_criteria": {
        "score_4_proficient": "Presentation includes accurate, detailed information on composition, location, and origin significance. Student demonstrates strong understanding of how these bodies relate to solar system formation.",
        "score_3_developing": "Presentation includes basic information on composition and location but may miss the significance regarding solar system formation.",
        "score_2_beginning": "Presentation is vague, missing key definitions (e.g., confusing comets and asteroids) or location data.",
        "score_1_not_yet": "Presentation is significantly incomplete or incorrect.",
        "score_0_no_participation": "Student refuses to present or submit work."
      },
      "activity_standards": [
        "112.48.c.11.B"
      ]
    }
  ],
  "notes": "This lesson is designed for an Astronomy or Earth and Space Science course but can be adapted for Physics by emphasizing gravitational calculations in Day 1 and 2. Access to a long hallway or outdoor track is recommended for Day 1."
}`

// ExamplePlan parses and validates the built-in seed document.
func ExamplePlan() (domain.LessonPlan, error) {
	doc, err := ParseDocument([]byte(ExampleJSON))
	if err != nil {
		return domain.LessonPlan{}, err
	}
	if errs := ValidateDocument(doc); len(errs) > 0 {
		return domain.LessonPlan{}, fmt.Errorf("example plan invalid: %v", errs[0])
	}
	return doc.ToDomain(), nil
}
