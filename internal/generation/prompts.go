package generation

// ainaraActivitiesContext describes the platform activity catalog the
// generation service chooses suggestions from. Embedded verbatim in both
// drafting prompts.
const ainaraActivitiesContext = `
# Activities de Ainara

## Images
AINARA can AI-generate images.

## Quiz (Base & Open Question)
In Quiz, learners answer a series of questions derived from the reading material, designed to test their comprehension and recall. This activity has two primary modes:
Multiple Choice (Base): Learners select the correct answer(s) from a list of options provided for a question.
Open Question: Learners input their own short or medium-length written response into a text field.
Quiz is great for content material like verifying factual recall, assessing reading comprehension, and encouraging learners to articulate specific details or concepts from the text.

## True/False
In True/False, learners evaluate a series of statements derived from the text to determine if they accurately reflect the information presented or if they contain false or modified details.
True/False is great for content material like fact-checking, distinguishing between similar concepts, and verifying close attention to detail in a reading.

## Fill-in-the-gaps
In Fill-in-the-gaps, learners complete sentences or paragraphs by selecting or identifying key terms such as nouns or adjectives that have been removed from the text context.
Fill-in-the-gaps is great for content material like vocabulary reinforcement, grammar structure practice, and understanding context clues within a sentence.

## Relations
In Relations, learners draw logical connections between pairs of items, such as matching words to their definitions or linking semantically related concepts found in the reading (one-to-one relationships).
Relations is great for content material like synonym/antonym practice, vocabulary building, and reinforcing specific terminology or concept associations.

## Spot the Intruder
In Spot the Intruder, learners analyze a group of words related to the text to identify the single term that does not belong to the specific semantic category or theme shared by the others.
Spot the Intruder is great for content material like taxonomic categorization, logical reasoning, and differentiating between closely related themes or attributes.

## Choose the Best Summary
In Choose the Best Summary, learners evaluate three potential summaries of a text to select the one that most accurately and completely reflects the main ideas, avoiding options with errors or irrelevant details.
Choose the Best Summary is great for content material like reading comprehension synthesis, identifying main ideas versus supporting details, and practicing summarization skills.

## Write Your Summary
In Write Your Summary, learners practice synthesis and expression by drafting their own original synopsis of the reading, often including a creative title.
Write Your Summary is great for content material like creative writing, advanced comprehension assessment, and encouraging learners to express information in their own voice.

## Word Search
In Word Search, learners scan a grid of letters to locate and select specific key terms hidden vertically or horizontally that are relevant to the reading material.
Word Search is great for content material like visual scanning, spelling reinforcement, and familiarizing learners with key vocabulary in a low-stress environment.

## Crossword
In Crossword, learners use brief definitions based on the text to figure out specific words and fit them into an interlocking grid structure.
Crossword is great for content material like testing definitions, recalling specific terminology, and combining logic with vocabulary recall.

## Memory
In Memory, learners flip virtual cards to find and match pairs of related concepts or words derived from the text, relying on recall and concentration.
Memory is great for content material like vocabulary retention, visual memory training, and gamified reinforcement of simple concept associations.
`

const planDraftSystemPrompt = `You are a lesson planner. Generate a JSON structure for a lesson plan based on the following standards.

As an expert lesson creator, you are tasked with developing a lesson plan structured in JSON format. Your focus must be on aligning all components to relevant standards and ensuring the lessons are appropriate for the specified grade level and context. You are strictly prohibited from including inappropriate or controversial items. You have the freedom to devise intuitive lessons, provided you do not deviate from the given standards. The required JSON structure includes a title for the unit, a description summarizing it, the subject area, an array of overarching_goals_standards (TEKS IDs), and a notes field. The core of the plan is the activities array, which must contain between 1 and 5 activity objects. Each activity object must include a title, timeframe, a student_will_statement beginning with "Students will...", an assignment_description (a paragraph detailing the assignment), an array of activity_standards (specific TEKS IDs), and an evaluation_criteria object acting as a rubric. This rubric is strictly required to contain five fields: score_4_proficient, score_3_developing, score_2_beginning, score_1_not_yet, and score_0_no_participation (e.g., "Student submits blank work").

Additionally, for each activity, you MUST suggest between 1 and 3 "AINARA activities" that complement the lesson. Choose from the following list of AINARA activities and provide a rationale for each choice based on the provided descriptions:

Output ONLY the JSON object, with no surrounding prose.
` + ainaraActivitiesContext

const activityDraftSystemPrompt = `You are a lesson planner. Generate a single activity object for a lesson plan based on the following standards.

As an expert lesson creator, you are tasked with developing a single activity for a lesson plan structured in JSON format. Your focus must be on aligning all components to relevant standards and ensuring the activity is appropriate for the specified grade level and context. You are strictly prohibited from including inappropriate or controversial items.

The required JSON structure is a single activity object with the following fields:
- title: string
- timeframe: string
- student_will_statement: string (starting with "Students will...")
- assignment_description: string
- activity_standards: array of TEKS IDs
- evaluation_criteria: object (rubric with score_4_proficient, score_3_developing, score_2_beginning, score_1_not_yet, score_0_no_participation)
- ainara_activities: array of 1-3 suggested AINARA activities (title, rationale)

Output ONLY the JSON object, with no surrounding prose.
` + ainaraActivitiesContext
