// Package knowledge is the assistant's built-in fallback: a static
// investment guide plus keyword matching. It needs no network and never
// fails, so the router can always fall through to it.
package knowledge

import "strings"

// SourceLabel identifies fallback answers in Answer.Sources.
const SourceLabel = "Financial Knowledge Base"

const baseGuide = `# Stock Market Investment Guide

## What is the Stock Market?
The stock market is a collection of exchanges where stocks (pieces of ownership in businesses) are bought and sold. It's a way for companies to raise money and for investors to potentially profit from company growth.

## How to Start Investing in Stocks

### Step 1: Open a Demat Account
A Demat (dematerialized) account holds your shares in electronic form. You need:
- PAN Card
- Aadhaar Card
- Bank Account
- Passport size photos
Popular brokers in India: Zerodha, Groww, Upstox, Angel One, ICICI Direct

### Step 2: Understand the Basics
- BSE (Bombay Stock Exchange): India's oldest stock exchange, established in 1875
- NSE (National Stock Exchange): Largest stock exchange in India by volume
- SEBI: Securities and Exchange Board of India - the regulator
- Sensex: Index of top 30 companies on BSE
- Nifty 50: Index of top 50 companies on NSE

### Step 3: Types of Investments
1. Direct Stocks: Buy shares of individual companies
2. Mutual Funds: Pool money with other investors, managed by professionals
3. ETFs (Exchange Traded Funds): Trade like stocks but track an index
4. SIP (Systematic Investment Plan): Invest fixed amount regularly

## Investment Strategies

### Value Investing
Buy undervalued stocks with low P/E ratios, focus on fundamentals, hold long term (5+ years).

### Growth Investing
Focus on companies with high growth potential, accept higher valuations, technology and emerging sectors.

### Dividend Investing
Invest in companies paying regular dividends for passive income. More stable, less volatile.

## Risk Management

### Diversification
Don't put all eggs in one basket. Spread investments across:
- Different sectors (IT, Banking, Pharma, FMCG)
- Different market caps (Large cap, Mid cap, Small cap)
- Different asset classes (Stocks, Bonds, Gold, Real Estate)

### Emergency Fund
Keep 6-12 months of expenses in liquid savings before investing.

### Stop Loss
Set a price at which you'll sell to limit losses. Typically 10-15% below purchase price.

## Tax Saving Investments in India

### Section 80C (up to Rs 1.5 Lakh)
- ELSS Mutual Funds (3 year lock-in)
- PPF (Public Provident Fund)
- NSC (National Savings Certificate)
- Life Insurance Premiums
- 5-year Fixed Deposits

### Capital Gains Tax
- Short-term (held < 1 year): 15%
- Long-term (held > 1 year): 10% above Rs 1 Lakh gain

## Common Mistakes to Avoid

1. Timing the Market: Time in the market beats timing the market
2. Following Tips Blindly: Do your own research
3. Emotional Decisions: Don't panic sell or greed buy
4. Ignoring Fees: Consider expense ratios and brokerage charges
5. No Exit Strategy: Know when to book profits or cut losses`

// Base exposes the raw guide text for prompting AI backends.
func Base() string { return baseGuide }

// topic is one keyword rule. First match wins, so order carries
// priority: a question mentioning both "sip" and "tax" answers SIP.
type topic struct {
	keywords []string
	answer   string
}

var topics = []topic{
	{
		keywords: []string{"demat"},
		answer:   "A Demat account is required to hold shares in electronic form. To open one, you need your PAN Card, Aadhaar Card, and bank account. Popular brokers include Zerodha, Groww, Upstox, and Angel One.",
	},
	{
		keywords: []string{"sip", "systematic"},
		answer:   "SIP (Systematic Investment Plan) allows you to invest a fixed amount regularly in mutual funds. It helps average out market volatility and builds wealth through the power of compounding.",
	},
	{
		keywords: []string{"tax", "80c"},
		answer:   "Under Section 80C, you can save up to ₹1.5 Lakh through investments like ELSS Mutual Funds (3-year lock-in), PPF, NSC, and life insurance premiums. Capital gains tax is 15% for short-term (<1 year) and 10% for long-term gains above ₹1 Lakh.",
	},
	{
		keywords: []string{"mutual fund"},
		answer:   "Mutual funds pool money from multiple investors to invest in diversified portfolios. They're managed by professionals and are great for beginners. Start with index funds or large-cap funds for lower risk.",
	},
	{
		keywords: []string{"start", "begin", "how to invest"},
		answer:   "To start investing: 1) Open a Demat account with a broker like Zerodha or Groww. 2) Build an emergency fund (6-12 months expenses). 3) Start with SIPs in index funds or large-cap mutual funds. 4) Gradually learn about direct stock investing.",
	},
	{
		keywords: []string{"risk"},
		answer:   "Key risk management strategies: 1) Diversify across sectors and asset classes. 2) Never invest more than you can afford to lose. 3) Use stop-loss orders. 4) Maintain an emergency fund. 5) Invest for the long term to ride out volatility.",
	},
}

// Answer returns a canned response for the first topic the question
// mentions, or a generic excerpt of the guide when nothing matches.
func Answer(question string) string {
	q := strings.ToLower(question)
	for _, t := range topics {
		for _, kw := range t.keywords {
			if strings.Contains(q, kw) {
				return t.answer
			}
		}
	}
	excerpt := baseGuide
	if len(excerpt) > 500 {
		excerpt = excerpt[:500]
	}
	return "Based on the context I have:\n\n" + excerpt + "...\n\nFor more specific advice, please consult a certified financial advisor. Would you like to know about SIP investing, opening a Demat account, or tax-saving investments?"
}
